package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/irfansharif/huewheel/internal/colormodel"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Faint(true).Width(10)
)

// swatch renders text on a hex background with its contrast color.
func swatch(hex, text string) string {
	fg := colormodel.White
	if rgb, err := colormodel.HexToRGB(hex); err == nil {
		fg = colormodel.ContrastFor(rgb)
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg.Hex())).
		Padding(0, 1).
		Render(text)
}
