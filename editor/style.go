package editor

import "github.com/charmbracelet/lipgloss"

// Style controls textarea and overlay rendering.
type Style struct {
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Placeholder:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("153")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}
