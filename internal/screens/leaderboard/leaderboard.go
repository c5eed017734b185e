package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/medal"
	"github.com/abhisek/hanjaolympics/internal/router"
	"github.com/abhisek/hanjaolympics/internal/screen"
	"github.com/abhisek/hanjaolympics/internal/store"
	"github.com/abhisek/hanjaolympics/internal/ui/components"
	"github.com/abhisek/hanjaolympics/internal/ui/layout"
	"github.com/abhisek/hanjaolympics/internal/ui/theme"
)

// shownRows caps the rows drawn per board.
const shownRows = 10

var errNoData = errors.New("순위 저장소가 없습니다")

type board struct {
	id    string
	title string
}

// boards lists the per-game boards followed by the composite board.
func boards() []board {
	var out []board
	for _, g := range game.Ranked() {
		out = append(out, board{id: string(g.ID), title: g.Title()})
	}
	return append(out, board{id: game.TotalBoard, title: "🏅 종합"})
}

type boardLoadedMsg struct {
	id      string
	grade   hanja.Grade
	entries []store.LeaderboardEntry
	err     error
}

// LeaderboardScreen ranks players at the viewer's grade, one board at a time.
type LeaderboardScreen struct {
	svc     *screen.Services
	boards  []board
	current int
	grade   hanja.Grade
	entries []store.LeaderboardEntry
	loading bool
	errMsg  string
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

// New opens the board for the first ranked game.
func New(svc *screen.Services) *LeaderboardScreen {
	var player *screen.Player
	if svc != nil {
		player = svc.Player
	}
	return &LeaderboardScreen{
		svc:    svc,
		boards: boards(),
		grade:  player.Grade(),
	}
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	return s.load()
}

func (s *LeaderboardScreen) load() tea.Cmd {
	s.loading = true
	s.errMsg = ""
	svc, id, grade := s.svc, s.boards[s.current].id, s.grade
	return func() tea.Msg {
		if svc == nil || svc.Data == nil {
			return boardLoadedMsg{id: id, grade: grade, err: errNoData}
		}
		entries, err := svc.Data.Leaderboard(context.Background(), id, grade)
		return boardLoadedMsg{id: id, grade: grade, entries: entries, err: err}
	}
}

func (s *LeaderboardScreen) Title() string {
	return "순위표"
}

func (s *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "종목"},
		{Key: "Esc", Description: "뒤로"},
	}
}

// Board returns the id of the board on screen.
func (s *LeaderboardScreen) Board() string {
	return s.boards[s.current].id
}

func (s *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoadedMsg:
		// Drop results for a board the player already moved past.
		if msg.id != s.Board() || msg.grade != s.grade {
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			s.entries = nil
			return s, nil
		}
		s.entries = msg.entries
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "left", "h":
			s.current = (s.current - 1 + len(s.boards)) % len(s.boards)
			return s, s.load()
		case "right", "l", "tab":
			s.current = (s.current + 1) % len(s.boards)
			return s, s.load()
		}
	}
	return s, nil
}

func (s *LeaderboardScreen) View(width, height int) string {
	var b strings.Builder
	center := func(str string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, str))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	center(s.renderTabs())
	center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%s 부문", s.grade)))
	b.WriteString("\n")

	switch {
	case s.errMsg != "":
		center(lipgloss.NewStyle().Foreground(theme.Error).Render("오류: " + s.errMsg))
	case s.loading:
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("순위를 불러오는 중..."))
	case len(s.entries) == 0:
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("아직 기록이 없습니다"))
	default:
		total := s.Board() == game.TotalBoard
		for i, e := range s.entries {
			if i >= shownRows {
				break
			}
			center(s.renderRow(e, total))
			if total && len(e.Breakdown) > 0 {
				center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(renderBreakdown(e.Breakdown)))
			}
		}
	}

	return b.String()
}

func (s *LeaderboardScreen) renderTabs() string {
	b := s.boards[s.current]
	arrow := lipgloss.NewStyle().Foreground(theme.TextDim)
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.ArcadeYellow).Render(b.title)
	return arrow.Render("◀  ") + title + arrow.Render(fmt.Sprintf("  ▶   (%d/%d)", s.current+1, len(s.boards)))
}

func (s *LeaderboardScreen) renderRow(e store.LeaderboardEntry, total bool) string {
	rank := fmt.Sprintf("%2d", e.Rank)
	switch e.Rank {
	case 1:
		rank = medal.Gold.Icon()
	case 2:
		rank = medal.Silver.Icon()
	case 3:
		rank = medal.Bronze.Icon()
	}

	score := fmt.Sprintf("%5d점", e.Score)
	if !total && medal.LowerIsBetter(s.Board()) {
		score = fmt.Sprintf("%5d회", e.Score)
	}

	style := lipgloss.NewStyle().Foreground(theme.Text)
	if e.UserID != "" && e.UserID == s.svc.UserID() {
		style = style.Foreground(theme.Primary).Bold(true)
	}
	line := style.Render(fmt.Sprintf("%s  %s %-12s %s", rank, iconOrDefault(e.Icon), e.Username, score))
	if !total {
		line += "  " + components.MedalBadge(e.Medal)
	}
	return line
}

func renderBreakdown(points map[string]int) string {
	var parts []string
	for _, g := range game.Ranked() {
		if p, ok := points[string(g.ID)]; ok && p > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", g.Icon, p))
		}
	}
	return strings.Join(parts, "  ")
}

func iconOrDefault(icon string) string {
	if icon == "" {
		return "🐯"
	}
	return icon
}
