package app

import "github.com/charmbracelet/lipgloss"

// Styles controls the chrome around the editor pane.
type Styles struct {
	Title          lipgloss.Style
	Label          lipgloss.Style
	Control        lipgloss.Style
	ControlFocused lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).PaddingRight(2),
		Label:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Control:        lipgloss.NewStyle().PaddingRight(2),
		ControlFocused: lipgloss.NewStyle().PaddingRight(2).Bold(true).Foreground(lipgloss.Color("212")),
	}
}
