package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/hanjaolympics/internal/session"
	"github.com/abhisek/hanjaolympics/internal/ui/components"
	"github.com/abhisek/hanjaolympics/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.quitConfirm {
		return renderQuitConfirm(width, height)
	}
	switch s.sess.Phase() {
	case sess.PhaseCountdown:
		return s.renderCountdown(width, height)
	case sess.PhaseAwaiting, sess.PhaseResolved:
		return s.renderQuestionView(width, height)
	}
	return renderLoading(width, height)
}

// renderCountdown shows the game name and the lead-in number.
func (s *SessionScreen) renderCountdown(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(s.mode.Title())
	desc := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(s.mode.Description)
	count := theme.Glyph.Render(fmt.Sprintf("%d", s.sess.Countdown()))

	content := strings.Join([]string{title, desc, "", count}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderQuestionView renders the active question display.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	var b strings.Builder
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	b.WriteString(components.StatusLine(s.renderProgressLabel(), s.renderScoreLabel(), inner))
	b.WriteString("\n")
	b.WriteString(s.renderBar(inner))
	b.WriteString("\n\n")

	q := s.sess.Question()

	center := func(str string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, str))
		b.WriteString("\n")
	}

	center(theme.Glyph.Render(q.Prompt))
	if q.Hint != "" {
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(q.Hint))
	}
	b.WriteString("\n")

	resolved := s.sess.Phase() == sess.PhaseResolved
	chosen, correct := s.sess.LastAnswer()
	center(s.mc.View(resolved, q.Answer, chosen))
	b.WriteString("\n")

	if resolved {
		center(renderFeedback(correct, q.Options, q.Answer))
	}

	return b.String()
}

// renderProgressLabel shows the question number and, for games with lives,
// the remaining hearts.
func (s *SessionScreen) renderProgressLabel() string {
	label := fmt.Sprintf("  %d번째 문제", s.sess.Index()+1)
	if planned := s.sess.Planned(); planned > 0 {
		label = fmt.Sprintf("  %d/%d", s.sess.Index()+1, planned)
	}
	out := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(label)
	if s.mode.Lives > 0 {
		out += "  " + components.Hearts(s.sess.Lives(), s.mode.Lives)
	}
	return out
}

func (s *SessionScreen) renderScoreLabel() string {
	parts := []string{
		lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("정답 %d", s.sess.Correct())),
	}
	if s.mode.Points != nil {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(fmt.Sprintf("%d점", s.sess.Score())))
	}
	if streak := s.sess.Streak(); streak >= 2 {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("🔥%d", streak)))
	}
	if s.mode.Timed() {
		secs := int(s.sess.Remaining().Seconds())
		color := theme.Text
		if secs <= 10 {
			color = theme.Error
		}
		parts = append(parts, lipgloss.NewStyle().Foreground(color).Bold(true).Render(fmt.Sprintf("⏱ %d초", secs)))
	}
	return strings.Join(parts, "  ")
}

// renderBar shows the clock for timed games and question progress otherwise.
func (s *SessionScreen) renderBar(width int) string {
	bar := components.ProgressBar{Width: width}
	switch {
	case s.mode.Timed():
		bar.Percent = components.Fraction(s.sess.Remaining().Seconds(), s.mode.TimeLimit.Seconds())
		if bar.Percent <= 1.0/6 {
			bar.Fill = theme.Error
		}
	case s.sess.Planned() > 0:
		bar.Percent = components.Fraction(float64(s.sess.Index()), float64(s.sess.Planned()))
	default:
		return lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width))
	}
	return bar.View()
}

func renderFeedback(correct bool, options []string, answer int) string {
	if correct {
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("정답!")
	}
	msg := "아쉬워요"
	if answer >= 0 && answer < len(options) {
		msg += " · 정답: " + options[answer]
	}
	return lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(msg)
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	lines := []string{
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("게임을 그만할까요?"),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("그만두면 기록이 저장되지 않습니다."),
		"",
		lipgloss.NewStyle().Foreground(theme.Error).Render("[Y] 그만하기"),
		lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] 계속하기"),
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}

// renderLoading renders the state between the last answer and the results.
func renderLoading(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  결과를 집계하는 중...")
}
