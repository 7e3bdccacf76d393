package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines colors and symbols for the menu using lipgloss.
type Theme struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Help    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// DefaultTheme returns the standard terminal theme.
func DefaultTheme() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Help:    lipgloss.NewStyle().Faint(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}
