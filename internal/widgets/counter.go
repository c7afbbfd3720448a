package widgets

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/quantumdash/internal/random"
	"github.com/jask/quantumdash/internal/theme"
)

// DefaultCounterInterval is the period range each counter tick is drawn from.
var DefaultCounterInterval = Interval{Min: 50 * time.Millisecond, Max: 250 * time.Millisecond}

// Increment produces the next delta for a Counter.
type Increment func(src random.Source) int64

// UniformIncrement draws deltas uniformly from [lo, lo+span).
func UniformIncrement(lo, span int) Increment {
	return func(src random.Source) int64 {
		return int64(lo + src.IntN(span))
	}
}

// Counter is a running total bumped on a jittered timer. Negative deltas are
// dropped so the value never goes down.
type Counter struct {
	ticker
	src      random.Source
	label    string
	color    lipgloss.Color
	interval Interval
	inc      Increment
	value    int64
}

func NewCounter(label string, initial int64, inc Increment, color lipgloss.Color, src random.Source, iv Interval) *Counter {
	return &Counter{
		ticker:   newTicker(),
		src:      src,
		label:    label,
		color:    color,
		interval: iv,
		inc:      inc,
		value:    initial,
	}
}

func (c *Counter) Label() string { return c.label }
func (c *Counter) Value() int64 { return c.value }

func (c *Counter) Init() tea.Cmd {
	return c.schedule(c.interval.draw(c.src))
}

func (c *Counter) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TickMsg)
	if !ok || !c.accepts(tick) {
		return nil
	}
	if d := c.inc(c.src); d > 0 {
		c.value += d
	}
	return c.schedule(c.interval.draw(c.src))
}

var counterLabelStyle = lipgloss.NewStyle().Foreground(theme.Muted)

func (c *Counter) View() string {
	return counterLabelStyle.Render(c.label) + "\n" +
		lipgloss.NewStyle().Foreground(c.color).Bold(true).Render(Thousands(c.value))
}
