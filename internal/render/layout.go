package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Widget is anything that can draw itself into a width x height cell.
type Widget interface {
	Render(width, height int) string
}

// Static adapts a pre-rendered string into a Widget.
type Static string

func (s Static) Render(width, height int) string {
	lines := splitLines(string(s))
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// VStack splits the height evenly between its widgets.
type VStack struct {
	Widgets []Widget
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	heights := splitEven(height, len(v.Widgets))
	lines := make([]string, 0, len(v.Widgets))
	for i, w := range v.Widgets {
		lines = append(lines, w.Render(width, max(1, heights[i])))
	}
	return strings.Join(lines, "\n")
}

// HStack splits the width evenly between its widgets, Gap columns apart,
// and pads every column to its share.
type HStack struct {
	Widgets []Widget
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	usable := max(1, width-gapTotal)
	widths := splitEven(usable, len(h.Widgets))
	rendered := make([][]string, len(h.Widgets))
	maxLines := 0
	for i, w := range h.Widgets {
		part := strings.Split(w.Render(max(1, widths[i]), height), "\n")
		rendered[i] = part
		if len(part) > maxLines {
			maxLines = len(part)
		}
	}
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		cols := make([]string, len(rendered))
		for i := range rendered {
			if line < len(rendered[i]) {
				cols[i] = padRight(rendered[i][line], widths[i])
			} else {
				cols[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cols, strings.Repeat(" ", h.Gap)))
	}
	return strings.Join(out, "\n")
}

// Grid lays widgets out row-major in a fixed number of columns.
type Grid struct {
	Widgets []Widget
	Columns int
	Gap     int
}

func (g Grid) Render(width, height int) string {
	if len(g.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	cols := max(1, g.Columns)
	rows := make([]Widget, 0, (len(g.Widgets)+cols-1)/cols)
	for start := 0; start < len(g.Widgets); start += cols {
		end := min(start+cols, len(g.Widgets))
		row := append([]Widget(nil), g.Widgets[start:end]...)
		for len(row) < cols {
			row = append(row, Static(""))
		}
		rows = append(rows, HStack{Widgets: row, Gap: g.Gap})
	}
	return VStack{Widgets: rows}.Render(width, height)
}

// splitEven divides total into n parts, giving the remainder to the first
// parts.
func splitEven(total, n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = total / n
	}
	for i := 0; i < total%n; i++ {
		out[i]++
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
