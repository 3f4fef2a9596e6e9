package ui

import "github.com/charmbracelet/lipgloss"

// Theme carries the renderer and the semantic colors of the interface.
// All styles are created through Theme.Renderer so output degrades
// correctly on non-TTY writers.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Danger    lipgloss.AdaptiveColor
}

// DefaultTheme returns the standard color scheme on the given renderer.
func DefaultTheme(renderer *lipgloss.Renderer) Theme {
	return Theme{
		Renderer:  renderer,
		Primary:   lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#BD93F9"},
		Secondary: lipgloss.AdaptiveColor{Light: "#5A5A8F", Dark: "#6272A4"},
		Subtext:   lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#BFBFBF"},
		Border:    lipgloss.AdaptiveColor{Light: "#D9D9D9", Dark: "#44475A"},
		Success:   lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#50FA7B"},
		Warning:   lipgloss.AdaptiveColor{Light: "#B26A00", Dark: "#FFB86C"},
		Danger:    lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF5555"},
	}
}
