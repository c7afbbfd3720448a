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

// Side is the color of the piece standing on a square.
type Side int

const (
	SideNone Side = iota
	SideLight
	SideDark
)

// Cell is one board square. A zero Glyph means the square is empty.
type Cell struct {
	Glyph     rune
	Side      Side
	Animating bool
}

func (c Cell) Empty() bool { return c.Glyph == 0 }

const (
	BoardSquares = 64
	boardFiles   = 8
)

var (
	darkBackRank  = [boardFiles]rune{'♜', '♞', '♝', '♛', '♚', '♝', '♞', '♜'}
	lightBackRank = [boardFiles]rune{'♖', '♘', '♗', '♕', '♔', '♗', '♘', '♖'}
)

const (
	darkPawn  = '♟'
	lightPawn = '♙'

	backRankAnimateChance = 0.3
	pawnAnimateChance     = 0.2
	tickAnimateChance     = 0.15
)

// Interval bounds a randomized timer period.
type Interval struct {
	Min time.Duration
	Max time.Duration
}

func (iv Interval) draw(src random.Source) time.Duration {
	return random.Between(src, iv.Min, iv.Max)
}

// DefaultBoardInterval is the period range a board's timer is drawn from.
var DefaultBoardInterval = Interval{Min: 800 * time.Millisecond, Max: 2000 * time.Millisecond}

// StartingPosition returns the standard opening layout with each piece
// independently flagged as animating.
func StartingPosition(src random.Source) [BoardSquares]Cell {
	var cells [BoardSquares]Cell
	for i := 0; i < boardFiles; i++ {
		cells[i] = Cell{Glyph: darkBackRank[i], Side: SideDark, Animating: random.Chance(src, backRankAnimateChance)}
		cells[8+i] = Cell{Glyph: darkPawn, Side: SideDark, Animating: random.Chance(src, pawnAnimateChance)}
		cells[48+i] = Cell{Glyph: lightPawn, Side: SideLight, Animating: random.Chance(src, pawnAnimateChance)}
		cells[56+i] = Cell{Glyph: lightBackRank[i], Side: SideLight, Animating: random.Chance(src, backRankAnimateChance)}
	}
	return cells
}

// Board is a decorative chess board whose pieces twitch and whose move
// counter climbs on a timer.
type Board struct {
	ticker
	src      random.Source
	id       string
	accent   lipgloss.Color
	interval time.Duration
	cells    [BoardSquares]Cell
	moves    int
	latency  float64
}

// NewBoard builds board number ordinal (1-based) in the opening position.
func NewBoard(ordinal int, accent lipgloss.Color, src random.Source, iv Interval) *Board {
	b := &Board{
		ticker:   newTicker(),
		src:      src,
		id:       fmt.Sprintf("%03d", ordinal),
		accent:   accent,
		cells:    StartingPosition(src),
		moves:    1 + src.IntN(300),
		interval: iv.draw(src),
	}
	b.latency = b.drawLatency()
	return b
}

func (b *Board) ID() string { return b.id }
func (b *Board) Moves() int { return b.moves }
func (b *Board) Cells() [BoardSquares]Cell { return b.cells }
func (b *Board) Interval() time.Duration { return b.interval }
func (b *Board) Accent() lipgloss.Color { return b.accent }

func (b *Board) Init() tea.Cmd {
	return b.schedule(b.interval)
}

func (b *Board) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TickMsg)
	if !ok || !b.accepts(tick) {
		return nil
	}
	b.advance()
	return b.schedule(b.interval)
}

func (b *Board) advance() {
	b.moves += 1 + b.src.IntN(3)
	for i := range b.cells {
		b.cells[i].Animating = !b.cells[i].Empty() && random.Chance(b.src, tickAnimateChance)
	}
	b.latency = b.drawLatency()
}

func (b *Board) drawLatency() float64 {
	return 0.001 + b.src.Float64()*0.004
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true)
	moveStyle       = lipgloss.NewStyle().Foreground(theme.NeonGreen)
	latencyStyle    = lipgloss.NewStyle().Foreground(theme.Muted)
)

func (b *Board) View() string {
	var sb strings.Builder
	sb.WriteString(boardTitleStyle.Foreground(b.accent).Render("GAME #" + b.id))
	sb.WriteByte('\n')
	for row := 0; row < boardFiles; row++ {
		for col := 0; col < boardFiles; col++ {
			idx := row*boardFiles + col
			sb.WriteString(b.squareStyle(idx).Render(squareText(b.cells[idx])))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(moveStyle.Render(fmt.Sprintf("Move: %d 🦤", b.moves)))
	sb.WriteByte('\n')
	sb.WriteString(latencyStyle.Render(fmt.Sprintf("Δt: %.3fms", b.latency)))
	return sb.String()
}

func (b *Board) squareStyle(idx int) lipgloss.Style {
	bg := theme.SquareLight
	if (idx/boardFiles+idx%boardFiles)%2 == 0 {
		bg = theme.SquareDark
	}
	style := lipgloss.NewStyle().Background(bg)
	cell := b.cells[idx]
	switch cell.Side {
	case SideDark:
		style = style.Foreground(theme.White)
	case SideLight:
		style = style.Foreground(b.accent)
	}
	if cell.Animating {
		style = style.Bold(true).Blink(true)
	}
	return style
}

func squareText(c Cell) string {
	if c.Empty() {
		return "  "
	}
	return string(c.Glyph) + " "
}
