package widgets

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/quantumdash/internal/random"
	"github.com/jask/quantumdash/internal/render"
)

// DefaultChartInterval is how often a chart shifts in a new sample.
const DefaultChartInterval = 500 * time.Millisecond

const chartHeight = 4

// Chart is a sliding window of samples in [0, 100).
type Chart struct {
	ticker
	src      random.Source
	title    string
	color    lipgloss.Color
	interval time.Duration
	samples  []float64
}

// NewChart copies seed; the window keeps len(seed) samples for its lifetime.
func NewChart(title string, seed []float64, color lipgloss.Color, src random.Source, interval time.Duration) *Chart {
	return &Chart{
		ticker:   newTicker(),
		src:      src,
		title:    title,
		color:    color,
		interval: interval,
		samples:  append([]float64(nil), seed...),
	}
}

func (c *Chart) Title() string { return c.title }

// Samples returns a copy of the window, oldest first.
func (c *Chart) Samples() []float64 {
	return append([]float64(nil), c.samples...)
}

func (c *Chart) Init() tea.Cmd {
	return c.schedule(c.interval)
}

func (c *Chart) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TickMsg)
	if !ok || !c.accepts(tick) {
		return nil
	}
	c.shift(c.src.Float64() * 100)
	return c.schedule(c.interval)
}

func (c *Chart) shift(v float64) {
	if len(c.samples) == 0 {
		return
	}
	copy(c.samples, c.samples[1:])
	c.samples[len(c.samples)-1] = v
}

func (c *Chart) View() string {
	return c.Render(len(c.samples)*3, chartHeight+1)
}

func (c *Chart) Render(width, height int) string {
	return render.Chart{Title: c.title, Values: c.samples, Max: 100, Color: c.color}.Render(width, height)
}
