package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/medal"
	"github.com/abhisek/hanjaolympics/internal/router"
	"github.com/abhisek/hanjaolympics/internal/screen"
	"github.com/abhisek/hanjaolympics/internal/session"
	"github.com/abhisek/hanjaolympics/internal/ui/components"
	"github.com/abhisek/hanjaolympics/internal/ui/layout"
	"github.com/abhisek/hanjaolympics/internal/ui/theme"
)

// maxWrongShown caps the missed characters listed under the score.
const maxWrongShown = 12

// SummaryScreen displays the result of one game.
type SummaryScreen struct {
	result  session.Result
	info    game.Info
	buttons []components.Button
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscCapturer = (*SummaryScreen)(nil)

// New creates a SummaryScreen. replay builds a fresh game screen for the
// play-again button; nil hides it.
func New(result session.Result, info game.Info, replay func() screen.Screen) *SummaryScreen {
	home := components.NewButton("홈으로", "", true, func() tea.Cmd {
		return func() tea.Msg { return router.PopToRootMsg{} }
	})
	buttons := []components.Button{home}
	if replay != nil {
		again := components.NewButton("다시하기", "r", false, func() tea.Cmd {
			next := replay()
			return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		})
		buttons = append(buttons, again)
	}
	return &SummaryScreen{result: result, info: info, buttons: buttons}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "경기 결과"
}

// CapturesEsc keeps Esc here so the home screen reloads on the way back.
func (s *SummaryScreen) CapturesEsc() bool {
	return true
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "확인"},
		{Key: "Esc", Description: "홈으로"},
	}
	if len(s.buttons) > 1 {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "다시하기"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	case "left", "right", "tab":
		s.focusNext()
		return s, nil
	}
	for i := range s.buttons {
		var cmd tea.Cmd
		s.buttons[i], cmd = s.buttons[i].Update(msg)
		if cmd != nil {
			return s, cmd
		}
	}
	return s, nil
}

func (s *SummaryScreen) focusNext() {
	active := 0
	for i, b := range s.buttons {
		if b.Active {
			active = i
		}
		s.buttons[i].Active = false
	}
	s.buttons[(active+1)%len(s.buttons)].Active = true
}

func (s *SummaryScreen) View(width, height int) string {
	res := s.result
	var b strings.Builder

	center := func(str string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, str))
		b.WriteString("\n")
	}

	center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(s.info.Title() + " 경기 종료!"))
	b.WriteString("\n")

	center(lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.MedalColor(res.Medal)).
		Padding(0, 3).
		Render(components.MedalBadge(res.Medal)))
	b.WriteString("\n")

	center(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(scoreLine(res)))
	if res.Detail != "" {
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(res.Detail))
	}
	b.WriteString("\n")

	mins := int(res.Duration.Minutes())
	secs := int(res.Duration.Seconds()) % 60
	stats := fmt.Sprintf("정답률 %.0f%%     최고 연속 %d     시간 %d:%02d",
		res.Accuracy()*100, res.BestStreak, mins, secs)
	center(lipgloss.NewStyle().Foreground(theme.Text).Render(stats))

	if len(res.Wrong) > 0 {
		b.WriteString("\n")
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 50)))
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("다시 볼 한자"))
		center(divider)
		center(lipgloss.NewStyle().Foreground(theme.Error).Width(min(width-8, 50)).Render(wrongList(res.Wrong)))
	}

	b.WriteString("\n")
	views := make([]string, len(s.buttons))
	for i, btn := range s.buttons {
		views[i] = btn.View()
	}
	center(lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(views, "  ")))

	return b.String()
}

// scoreLine describes the score in the game's own unit.
func scoreLine(res session.Result) string {
	switch {
	case medal.LowerIsBetter(res.GameID):
		return fmt.Sprintf("%d회 시도", res.Score)
	case res.Total == 100:
		return fmt.Sprintf("%d%%", res.Score)
	case res.Total > 0:
		return fmt.Sprintf("%d / %d", res.Score, res.Total)
	default:
		return fmt.Sprintf("%d점", res.Score)
	}
}

func wrongList(wrong []string) string {
	if len(wrong) <= maxWrongShown {
		return strings.Join(wrong, "  ")
	}
	return strings.Join(wrong[:maxWrongShown], "  ") + fmt.Sprintf("  외 %d개", len(wrong)-maxWrongShown)
}
