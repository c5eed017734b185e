package memory

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanjaolympics/internal/game"
	sess "github.com/abhisek/hanjaolympics/internal/session"
	"github.com/abhisek/hanjaolympics/internal/ui/components"
	"github.com/abhisek/hanjaolympics/internal/ui/theme"
)

// cardWidth fits the longest label ("아름다울 미" and the like).
const cardWidth = 14

func (m *MemoryScreen) View(width, height int) string {
	if m.quitConfirm {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join([]string{
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("게임을 그만할까요?"),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("그만두면 기록이 저장되지 않습니다."),
			"",
			lipgloss.NewStyle().Foreground(theme.Error).Render("[Y] 그만하기"),
			lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] 계속하기"),
		}, "\n"))
	}

	var sections []string
	switch m.game.Phase() {
	case sess.PhaseCountdown:
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(m.rules.Description),
			theme.Glyph.Render(fmt.Sprintf("%d", m.game.Countdown())))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n\n"))
	case sess.PhasePeek:
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
			Render(fmt.Sprintf("카드를 기억하세요! %d", m.game.Peek())))
	default:
		sections = append(sections, m.renderStatus(min(width-4, columns*(cardWidth+2))))
	}

	sections = append(sections, m.renderBoard())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}

func (m *MemoryScreen) renderStatus(width int) string {
	secs := int(m.game.Remaining().Seconds())
	timeColor := theme.Text
	if secs <= 10 {
		timeColor = theme.Error
	}
	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("짝 %d/%d  시도 %d", m.game.Board().Matched(), m.game.Board().Pairs, m.game.Attempts()))
	right := lipgloss.NewStyle().Foreground(timeColor).Bold(true).Render(fmt.Sprintf("⏱ %d초", secs))
	if combo := m.game.Combo(); combo >= 2 {
		right = lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("콤보 %d  ", combo)) + right
	}
	return components.StatusLine(left, right, width)
}

func (m *MemoryScreen) renderBoard() string {
	cards := m.game.Board().Cards
	var rows []string
	for start := 0; start < len(cards); start += columns {
		var row []string
		for i := start; i < start+columns && i < len(cards); i++ {
			row = append(row, m.renderCard(i, cards[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (m *MemoryScreen) renderCard(i int, c game.Card) string {
	style := lipgloss.NewStyle().
		Width(cardWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	text := "?"
	switch {
	case c.Matched:
		text = c.Text
		style = style.Foreground(theme.Success).BorderForeground(theme.Success)
	case c.FaceUp:
		text = c.Text
		style = style.Foreground(theme.ArcadeYellow).Bold(true)
		if m.game.Phase() == sess.PhaseResolved && !m.game.LastMatch() {
			style = style.Foreground(theme.Error)
		}
	default:
		style = style.Foreground(theme.TextDim)
	}

	if i == m.cursor && m.game.Phase() == sess.PhaseAwaiting {
		style = style.BorderForeground(theme.Primary).BorderStyle(lipgloss.ThickBorder())
	}
	return style.Render(text)
}
