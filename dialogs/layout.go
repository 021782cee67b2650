package dialogs

import "github.com/charmbracelet/lipgloss"

const overlayBG = lipgloss.Color("236")

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("252")).
	BorderBackground(overlayBG).
	Padding(1, 2).
	Width(60)

// Overlay centres a dialog on a shaded screen of the given size.
func Overlay(d Dialog, width, height int) string {
	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		d.View(),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(overlayBG),
	)
}
