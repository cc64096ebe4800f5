package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/mbhatt/taxtutor/internal/ui/theme"
)

const bannerArt = `
 ████████╗ █████╗ ██╗  ██╗████████╗██╗   ██╗████████╗ ██████╗ ██████╗
 ╚══██╔══╝██╔══██╗╚██╗██╔╝╚══██╔══╝██║   ██║╚══██╔══╝██╔═══██╗██╔══██╗
    ██║   ███████║ ╚███╔╝    ██║   ██║   ██║   ██║   ██║   ██║██████╔╝
    ██║   ██╔══██║ ██╔██╗    ██║   ██║   ██║   ██║   ██║   ██║██╔══██╗
    ██║   ██║  ██║██╔╝ ██╗   ██║   ╚██████╔╝   ██║   ╚██████╔╝██║  ██║
    ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝    ╚═════╝    ╚═╝    ╚═════╝ ╚═╝  ╚═╝`

const bannerCompact = "T A X T U T O R"

// RenderBanner returns the TAXTUTOR banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 72 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 72 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
