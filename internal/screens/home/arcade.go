package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanjaolympics/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const arcadeTitleFull = `██╗  ██╗ █████╗ ███╗   ██╗     ██╗ █████╗
██║  ██║██╔══██╗████╗  ██║     ██║██╔══██╗
███████║███████║██╔██╗ ██║     ██║███████║
██╔══██║██╔══██║██║╚██╗██║██   ██║██╔══██║
██║  ██║██║  ██║██║ ╚████║╚█████╔╝██║  ██║
╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝ ╚════╝ ╚═╝  ╚═╝`

const arcadeTitleCompact = "漢 · 字 · O L Y M P I C S"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(arcadeTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(arcadeTitleFull) + "\n" + renderRings() + "  " +
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("O L Y M P I C S"))
}

// renderRings draws the five ring colors as a single line.
func renderRings() string {
	colors := []lipgloss.Style{
		lipgloss.NewStyle().Foreground(theme.Primary),
		lipgloss.NewStyle().Foreground(theme.Accent),
		lipgloss.NewStyle().Foreground(theme.TextDim),
		lipgloss.NewStyle().Foreground(theme.Secondary),
		lipgloss.NewStyle().Foreground(theme.Error),
	}
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(c.Render("◯"))
	}
	return b.String()
}

// renderStatsBar renders the grade and daily challenge status in a
// bordered box matching content width.
func renderStatsBar(grade string, streak int, dailyDone bool, cw int, compact bool) string {
	gradeStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dailyStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			gradeStyle.Render(grade),
			streakStyle.Render(fmt.Sprintf("★%d", streak)),
			dailyText(dailyDone, true, dailyStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			gradeStyle.Render("급수 "+grade),
			streakStyle.Render(fmt.Sprintf("★ %d일 연속", streak)),
			dailyText(dailyDone, false, dailyStyle, dimStyle),
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func dailyText(done, compact bool, active, dim lipgloss.Style) string {
	if done {
		if compact {
			return dim.Render("📅✓")
		}
		return dim.Render("📅 오늘 도전 완료")
	}
	if compact {
		return active.Render("📅!")
	}
	return active.Render("📅 오늘의 도전 대기 중")
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders).
func renderArcadeMenuCompact(items []string, selected int, cw int, disabled map[int]bool) string {
	var lines []string
	for i, label := range items {
		var line string
		if disabled[i] {
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + label)
		} else if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
