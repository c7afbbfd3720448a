package render

import "github.com/charmbracelet/lipgloss"

// Box draws rounded panel chrome with a bold title line in the accent color.
type Box struct {
	Title   string
	Content string
	Accent  lipgloss.Color
}

func (b Box) Render(width, height int) string {
	if width <= 2 || height <= 2 {
		return ""
	}
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(b.Accent).
		Padding(0, 1).
		Width(width - 2).
		MaxHeight(height)
	title := lipgloss.NewStyle().Foreground(b.Accent).Bold(true).Render(b.Title)
	if b.Title == "" {
		return border.Render(b.Content)
	}
	return border.Render(title + "\n" + b.Content)
}
