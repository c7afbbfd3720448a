package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const latticeStep = 4

// Backdrop paints the ambient background behind a block: a dot lattice on
// every other blank row and a scan line on ScanRow. Only rows that are
// entirely blank are touched, so widgets always draw over it.
type Backdrop struct {
	Lattice lipgloss.Color
	Scan    lipgloss.Color
	// ScanRow is the block row the scan line sits on; negative hides it.
	ScanRow int
}

func (b Backdrop) Apply(s string, width int) string {
	if width <= 0 {
		return s
	}
	lattice := lipgloss.NewStyle().Foreground(b.Lattice).Faint(true)
	scan := lipgloss.NewStyle().Foreground(b.Scan)
	lines := splitLines(s)
	for y, line := range lines {
		if strings.TrimSpace(ansi.Strip(line)) != "" {
			continue
		}
		switch {
		case y == b.ScanRow:
			lines[y] = scan.Render(strings.Repeat("─", width))
		case y%2 == 1:
			lines[y] = lattice.Render(latticeRow(width))
		}
	}
	return strings.Join(lines, "\n")
}

func latticeRow(width int) string {
	row := []rune(strings.Repeat(" ", width))
	for x := 0; x < width; x += latticeStep {
		row[x] = '·'
	}
	return string(row)
}
