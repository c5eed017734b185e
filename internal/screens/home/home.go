package home

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/logger"
	"github.com/abhisek/hanjaolympics/internal/router"
	"github.com/abhisek/hanjaolympics/internal/screen"
	"github.com/abhisek/hanjaolympics/internal/screens/history"
	"github.com/abhisek/hanjaolympics/internal/screens/leaderboard"
	"github.com/abhisek/hanjaolympics/internal/screens/memory"
	"github.com/abhisek/hanjaolympics/internal/screens/profile"
	sessionscreen "github.com/abhisek/hanjaolympics/internal/screens/session"
	"github.com/abhisek/hanjaolympics/internal/screens/study"
	"github.com/abhisek/hanjaolympics/internal/store"
	"github.com/abhisek/hanjaolympics/internal/ui/components"
	"github.com/abhisek/hanjaolympics/internal/ui/layout"

	"go.uber.org/zap"
)

// statusLoadedMsg carries the daily challenge status for the stats bar.
type statusLoadedMsg struct {
	Streak    int
	DailyDone bool
}

// HomeScreen is the hub listing every game.
type HomeScreen struct {
	svc           *screen.Services
	menu          components.Menu
	streak        int
	dailyDone     bool
	mascotVariant MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *screen.Services) *HomeScreen {
	h := &HomeScreen{svc: svc, mascotVariant: MascotAlert}

	var items []components.MenuItem
	for _, info := range game.Catalog() {
		items = append(items, components.MenuItem{
			Label:  info.Title(),
			Action: pushCmd(func() screen.Screen { return GameScreen(svc, info.ID) }),
		})
	}
	items = append(items,
		components.MenuItem{Label: "📖 한자 공부", Action: pushCmd(func() screen.Screen { return study.New(svc) })},
		components.MenuItem{Label: "🗂 기록", Action: pushCmd(func() screen.Screen { return history.New(svc) })},
		components.MenuItem{Label: "🏆 순위표", Action: pushCmd(func() screen.Screen { return leaderboard.New(svc) })},
		components.MenuItem{Label: "🐯 내 정보", Action: pushCmd(func() screen.Screen { return profile.New(svc) })},
		components.MenuItem{Label: "나가기", Action: func() tea.Cmd { return tea.Quit }},
	)

	h.menu = components.NewMenu(items)
	return h
}

// GameScreen builds the play screen for id. Unknown ids fall back to the
// daily challenge.
func GameScreen(svc *screen.Services, id game.ID) screen.Screen {
	if id == game.Gymnastics {
		return memory.New(svc, game.Memory())
	}
	mode, err := game.ModeFor(id)
	if err != nil {
		logger.Named("home").Warn("no quiz mode", zap.String("game", string(id)), zap.Error(err))
		mode, _ = game.ModeFor(game.Daily)
	}
	return sessionscreen.New(svc, mode)
}

func pushCmd(build func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd {
		next := build()
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	svc := h.svc
	if svc == nil || svc.Data == nil || svc.Player == nil {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		today := svc.Clock()
		log := logger.Named("home")

		var msg statusLoadedMsg
		streak, err := svc.Data.DailyStreak(ctx, svc.UserID(), today)
		if err != nil {
			log.Warn("load daily streak", zap.Error(err))
		}
		msg.Streak = streak

		_, err = svc.Data.DailyChallenge(ctx, svc.UserID(), today)
		switch {
		case err == nil:
			msg.DailyDone = true
		case !errors.Is(err, store.ErrNotFound):
			log.Warn("load daily challenge", zap.Error(err))
		}
		return msg
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statusLoadedMsg); ok {
		h.streak = m.Streak
		h.dailyDone = m.DailyDone
		h.mascotVariant = MascotAlert
		if m.DailyDone {
			h.mascotVariant = MascotCelebrating
		}
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactWidth(width) || layout.IsCompactHeight(height)

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}
	sections = append(sections, renderStatsBar(h.grade(), h.streak, h.dailyDone, cw, compact))
	sections = append(sections, renderArcadeMenuCompact(h.menu.Labels(), h.menu.Selected, cw, h.menu.DisabledSet()))

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) grade() string {
	if h.svc == nil {
		return ""
	}
	return h.svc.Player.Grade().String()
}

func (h *HomeScreen) Title() string {
	return "홈"
}

// Streak returns the daily challenge streak from the last status load.
func (h *HomeScreen) Streak() int {
	return h.streak
}
