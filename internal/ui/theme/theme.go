package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanjaolympics/internal/medal"
)

// Color palette, five Olympic ring colors over a dark ink background
var (
	Primary   = lipgloss.Color("#3B82F6") // Ring Blue
	Secondary = lipgloss.Color("#10B981") // Ring Green
	Accent    = lipgloss.Color("#F59E0B") // Ring Yellow
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Ring Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0B1120") // Ink
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")

	Gold   = lipgloss.Color("#FFD700")
	Silver = lipgloss.Color("#C0C0C0")
	Bronze = lipgloss.Color("#CD7F32")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Glyph renders a large featured character.
	Glyph = lipgloss.NewStyle().
		Bold(true).
		Foreground(ArcadeYellow).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 4)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// MedalColor returns the display color for a medal tier.
func MedalColor(m medal.Medal) color.Color {
	switch m {
	case medal.Gold:
		return Gold
	case medal.Silver:
		return Silver
	case medal.Bronze:
		return Bronze
	default:
		return TextDim
	}
}
