package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var barLevels = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Chart draws values as vertical bars scaled against Max.
type Chart struct {
	Title  string
	Values []float64
	Max    float64
	Color  lipgloss.Color
}

func (c Chart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := []string{lipgloss.NewStyle().Foreground(c.Color).Render(c.Title)}
	rows := height - 1
	if rows <= 0 {
		return lines[0]
	}
	if len(c.Values) == 0 {
		return lines[0] + "\n(no data)"
	}
	maxV := c.Max
	if maxV <= 0 {
		maxV = 1
	}
	colWidth := max(1, (width-(len(c.Values)-1))/len(c.Values))
	style := lipgloss.NewStyle().Foreground(c.Color)
	for r := rows - 1; r >= 0; r-- {
		cols := make([]string, len(c.Values))
		for i, v := range c.Values {
			cols[i] = strings.Repeat(string(barGlyph(v/maxV, rows, r)), colWidth)
		}
		lines = append(lines, style.Render(strings.Join(cols, " ")))
	}
	return strings.Join(lines, "\n")
}

// barGlyph picks the block for row r (0 = bottom) of a bar filling frac of rows.
func barGlyph(frac float64, rows, r int) rune {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	eighths := int(frac*float64(rows*8) + 0.5)
	level := eighths - r*8
	switch {
	case level <= 0:
		return barLevels[0]
	case level >= 8:
		return barLevels[8]
	default:
		return barLevels[level]
	}
}
