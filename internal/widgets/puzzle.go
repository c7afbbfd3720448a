package widgets

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/quantumdash/internal/random"
	"github.com/jask/quantumdash/internal/theme"
)

const (
	PuzzleSize = 9

	mutateChance     = 0.3
	cellRedrawChance = 0.2
)

// DefaultPuzzleInterval is the period range a puzzle's timer is drawn from.
var DefaultPuzzleInterval = Interval{Min: 200 * time.Millisecond, Max: 1000 * time.Millisecond}

// Puzzle is a 9x9 ARC-style color grid that flips between "analyzing" and
// "solved" and occasionally repaints some cells.
type Puzzle struct {
	ticker
	src      random.Source
	id       string
	interval time.Duration
	palette  []lipgloss.Color
	cells    [PuzzleSize][PuzzleSize]lipgloss.Color
	solving  bool
	pattern  float64
}

func NewPuzzle(ordinal int, src random.Source, iv Interval) *Puzzle {
	p := &Puzzle{
		ticker:   newTicker(),
		src:      src,
		id:       fmt.Sprintf("%03d", ordinal),
		palette:  theme.ARCPalette(),
		interval: iv.draw(src),
	}
	for r := range p.cells {
		for c := range p.cells[r] {
			p.cells[r][c] = random.Pick(src, p.palette)
		}
	}
	p.pattern = p.drawPattern()
	return p
}

func (p *Puzzle) ID() string { return p.id }
func (p *Puzzle) Solving() bool { return p.solving }
func (p *Puzzle) Interval() time.Duration { return p.interval }

// Cells returns a copy of the grid.
func (p *Puzzle) Cells() [PuzzleSize][PuzzleSize]lipgloss.Color { return p.cells }

func (p *Puzzle) Init() tea.Cmd {
	return p.schedule(p.interval)
}

func (p *Puzzle) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TickMsg)
	if !ok || !p.accepts(tick) {
		return nil
	}
	p.advance()
	return p.schedule(p.interval)
}

func (p *Puzzle) advance() {
	p.solving = !p.solving
	if random.Chance(p.src, mutateChance) {
		for r := range p.cells {
			for c := range p.cells[r] {
				if random.Chance(p.src, cellRedrawChance) {
					p.cells[r][c] = random.Pick(p.src, p.palette)
				}
			}
		}
	}
	p.pattern = p.drawPattern()
}

func (p *Puzzle) drawPattern() float64 {
	return 0.001 + p.src.Float64()*0.999
}

var (
	puzzleTitleStyle = lipgloss.NewStyle().Foreground(theme.ElectricBlue).Bold(true)
	analyzingStyle   = lipgloss.NewStyle().Foreground(theme.NeonCyan).Blink(true)
	solvedStyle      = lipgloss.NewStyle().Foreground(theme.Muted)
)

func (p *Puzzle) View() string {
	var sb strings.Builder
	sb.WriteString(puzzleTitleStyle.Render("ARC-AGI #" + p.id))
	sb.WriteByte('\n')
	for r := range p.cells {
		for _, color := range p.cells[r] {
			sb.WriteString(lipgloss.NewStyle().Background(color).Render("  "))
		}
		sb.WriteByte('\n')
	}
	if p.solving {
		sb.WriteString(analyzingStyle.Render("ANALYZING..."))
	} else {
		sb.WriteString(solvedStyle.Render("SOLVED"))
	}
	sb.WriteByte('\n')
	sb.WriteString(solvedStyle.Render(fmt.Sprintf("Pattern: %.3f", p.pattern)))
	return sb.String()
}
