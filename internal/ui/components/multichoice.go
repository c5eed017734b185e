package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanjaolympics/internal/ui/theme"
)

// MultiChoice is a numbered option selector. It tracks the cursor only;
// the caller owns scoring and tells View which option was right.
type MultiChoice struct {
	Options  []string
	Selected int
}

// NewMultiChoice creates a selector with the cursor on the first option.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{Options: options}
}

// Update moves the cursor. It returns the chosen index when the player
// presses Enter or an option's number, otherwise -1.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, int) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Options) == 0 {
		return m, -1
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter", "space":
		return m, m.Selected
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			n := int(key[0] - '1')
			if n < len(m.Options) {
				m.Selected = n
				return m, n
			}
		}
	}
	return m, -1
}

// View renders the options. When resolved, answer is highlighted as
// correct and chosen, if different, as wrong.
func (m MultiChoice) View(resolved bool, answer, chosen int) string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !resolved {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		var style lipgloss.Style
		switch {
		case resolved && i == answer:
			style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		case resolved && i == chosen:
			style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		case resolved:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		default:
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}
		b.WriteString(style.Render(line))
		if i < len(m.Options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
