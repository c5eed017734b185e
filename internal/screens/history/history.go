package history

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/router"
	"github.com/abhisek/hanjaolympics/internal/screen"
	"github.com/abhisek/hanjaolympics/internal/store"
	"github.com/abhisek/hanjaolympics/internal/ui/components"
	"github.com/abhisek/hanjaolympics/internal/ui/layout"
	"github.com/abhisek/hanjaolympics/internal/ui/theme"
)

// recentLimit is how many past games the screen loads.
const recentLimit = 50

var errNoData = errors.New("기록 저장소가 없습니다")

type historyLoadedMsg struct {
	Scores []store.ScoreRecord
	Best   []store.BestScore
	Err    error
}

// HistoryScreen lists past games with each game's personal best.
type HistoryScreen struct {
	svc      *screen.Services
	scores   []store.ScoreRecord
	best     []store.BestScore
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(svc *screen.Services) *HistoryScreen {
	return &HistoryScreen{
		svc:      svc,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		if svc == nil || svc.Data == nil {
			return historyLoadedMsg{Err: errNoData}
		}
		ctx := context.Background()

		scores, err := svc.Data.RecentScores(ctx, svc.UserID(), recentLimit)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// Personal bests are a nice-to-have; show the list without them.
		best, err := svc.Data.BestScores(ctx, svc.UserID())
		if err != nil {
			return historyLoadedMsg{Scores: scores}
		}
		return historyLoadedMsg{Scores: scores, Best: best}
	}
}

func (s *HistoryScreen) Title() string {
	return "기록"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "자세히"},
		{Key: "↑↓", Description: "이동"},
		{Key: "Esc", Description: "뒤로"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.scores = msg.Scores
			s.best = msg.Best
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.scores)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n오류: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  기록을 불러오는 중...")
	}
	if len(s.scores) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  아직 경기 기록이 없습니다. 첫 경기를 시작해 보세요!")
	}

	var b strings.Builder
	center := func(str string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, str))
		b.WriteString("\n")
	}

	if len(s.best) > 0 {
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("최고 기록"))
		center(renderBest(s.best))
		b.WriteString("\n")
	}

	for i, rec := range s.scores {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %-12s %6s  %s",
			prefix, rec.CreatedAt.Format("01/02 15:04"), gameTitle(rec.GameID), scoreText(rec), rec.Grade)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		center(style.Render(line) + "  " + components.MedalBadge(rec.Medal))

		if s.expanded[i] {
			detail := rec.Detail
			if len(rec.Wrong) > 0 {
				detail += "  ·  틀린 한자: " + strings.Join(rec.Wrong, " ")
			} else {
				detail += "  ·  모두 정답"
			}
			center(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("    " + detail))
		}
	}

	return b.String()
}

func renderBest(best []store.BestScore) string {
	parts := make([]string, 0, len(best))
	for _, bs := range best {
		parts = append(parts, fmt.Sprintf("%s %d %s", gameTitle(bs.GameID), bs.Best, bs.Medal.Icon()))
	}
	return lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Width(70).Align(lipgloss.Center).
		Render(strings.Join(parts, "   "))
}

func gameTitle(id string) string {
	if info, err := game.Lookup(id); err == nil {
		return info.Title()
	}
	return id
}

func scoreText(rec store.ScoreRecord) string {
	if rec.Total > 0 {
		return fmt.Sprintf("%d/%d", rec.Score, rec.Total)
	}
	return fmt.Sprintf("%d", rec.Score)
}
