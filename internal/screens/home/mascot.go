package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanjaolympics/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default
	MascotCelebrating                      // Gold, star eyes: today's challenge is done
	MascotAlert                            // Orange, exclamation: today's challenge waits
)

const mascotIdle = ` /\_/\
( ◉ ◉ )
 > 王 <`

const mascotCelebrating = ` /\_/\
( ★ ★ )
 > 王 <
  🥇`

const mascotAlert = ` /\_/\
( ◉ ◉ ) !
 > 王 <`

// RenderMascot returns the tiger mascot art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Accent

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Error
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
