package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Stage    lipgloss.Style
	Error    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Stage:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("178")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
