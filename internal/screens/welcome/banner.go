package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanjaolympics/internal/ui/theme"
)

const bannerArt = `
██╗  ██╗ █████╗ ███╗   ██╗     ██╗ █████╗
██║  ██║██╔══██╗████╗  ██║     ██║██╔══██╗
███████║███████║██╔██╗ ██║     ██║███████║
██╔══██║██╔══██║██║╚██╗██║██   ██║██╔══██║
██║  ██║██║  ██║██║ ╚████║╚█████╔╝██║  ██║
╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝ ╚════╝ ╚═╝  ╚═╝
          O  L  Y  M  P  I  C  S`

const bannerCompact = "漢字 O L Y M P I C S"

// RenderBanner returns the title banner in the arcade yellow.
// Uses a compact fallback for terminals narrower than 46 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if width < 46 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
