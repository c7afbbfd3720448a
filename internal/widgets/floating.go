package widgets

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jask/quantumdash/internal/random"
	"github.com/jask/quantumdash/internal/theme"
)

const (
	markerGlyph  = "🦤"
	markerChance = 0.3
	maxDrift     = 20
)

// FloatingConfig sizes the emitter.
type FloatingConfig struct {
	Interval time.Duration
	TTL      time.Duration
	Capacity int
}

// DefaultFloatingConfig spawns every 300ms, keeps 21 labels, and expires
// each after 8s.
var DefaultFloatingConfig = FloatingConfig{
	Interval: 300 * time.Millisecond,
	TTL:      8 * time.Second,
	Capacity: 21,
}

// Entity is one floating label.
type Entity struct {
	ID        string
	Text      string
	X         int
	Drift     int
	Color     lipgloss.Color
	CreatedAt time.Time
}

// ExpireMsg removes a single entity once its TTL has run out.
type ExpireMsg struct {
	ID       int
	EntityID string
	tag      int
}

// Placement is where an entity sits on the screen at the last tick.
type Placement struct {
	X, Y int
	Text string
}

// Floating spawns short-lived labels that rise across the screen.
type Floating struct {
	ticker
	src      random.Source
	cfg      FloatingConfig
	width    int
	height   int
	now      time.Time
	sweep    int
	entities []Entity
}

func NewFloating(src random.Source, cfg FloatingConfig) *Floating {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultFloatingConfig.Interval
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultFloatingConfig.TTL
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultFloatingConfig.Capacity
	}
	return &Floating{ticker: newTicker(), src: src, cfg: cfg}
}

func (f *Floating) Config() FloatingConfig { return f.cfg }

// Sweep counts accepted ticks. The dashboard derives its scan-line row
// from it.
func (f *Floating) Sweep() int { return f.sweep }

// Entities returns a copy of the live set, oldest first.
func (f *Floating) Entities() []Entity {
	return append([]Entity(nil), f.entities...)
}

func (f *Floating) Init() tea.Cmd {
	return f.schedule(f.cfg.Interval)
}

func (f *Floating) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width, f.height = msg.Width, msg.Height
	case TickMsg:
		if !f.accepts(msg) {
			return nil
		}
		f.sweep++
		e := f.spawn(msg.Time)
		return tea.Batch(f.schedule(f.cfg.Interval), f.expireAfter(e.ID))
	case ExpireMsg:
		if f.running && msg.ID == f.id && msg.tag == f.tag {
			f.remove(msg.EntityID)
		}
	}
	return nil
}

func (f *Floating) spawn(now time.Time) Entity {
	f.now = now
	f.prune()
	text := strconv.Itoa(f.src.IntN(1_000_000))
	if random.Chance(f.src, markerChance) {
		text = markerGlyph
	}
	e := Entity{
		ID:        uuid.NewString(),
		Text:      text,
		X:         f.src.IntN(max(1, f.width)),
		Drift:     f.src.IntN(2*maxDrift+1) - maxDrift,
		Color:     random.Pick(f.src, theme.FloatingColors()),
		CreatedAt: now,
	}
	f.entities = append(f.entities, e)
	if over := len(f.entities) - f.cfg.Capacity; over > 0 {
		f.entities = append(f.entities[:0], f.entities[over:]...)
	}
	return e
}

// prune drops entities at or past their TTL relative to the last tick.
func (f *Floating) prune() {
	kept := f.entities[:0]
	for _, e := range f.entities {
		if f.now.Sub(e.CreatedAt) < f.cfg.TTL {
			kept = append(kept, e)
		}
	}
	f.entities = kept
}

func (f *Floating) remove(entityID string) {
	for i, e := range f.entities {
		if e.ID == entityID {
			f.entities = append(f.entities[:i], f.entities[i+1:]...)
			return
		}
	}
}

func (f *Floating) expireAfter(entityID string) tea.Cmd {
	id, tag := f.id, f.tag
	return tea.Tick(f.cfg.TTL, func(time.Time) tea.Msg {
		return ExpireMsg{ID: id, EntityID: entityID, tag: tag}
	})
}

// Placements maps each live entity onto a width x height canvas. Entities
// start on the bottom row and rise to the top over their TTL.
func (f *Floating) Placements(width, height int) []Placement {
	if width <= 0 || height <= 0 {
		return nil
	}
	out := make([]Placement, 0, len(f.entities))
	for _, e := range f.entities {
		progress := float64(f.now.Sub(e.CreatedAt)) / float64(f.cfg.TTL)
		if progress < 0 {
			progress = 0
		}
		if progress >= 1 {
			continue
		}
		y := height - 1 - int(progress*float64(height))
		x := e.X + int(progress*float64(e.Drift))
		if f.width > 0 && f.width != width {
			x = x * width / f.width
		}
		x = min(max(0, x), width-1)
		out = append(out, Placement{
			X:    x,
			Y:    max(0, y),
			Text: lipgloss.NewStyle().Foreground(e.Color).Faint(true).Render(e.Text),
		})
	}
	return out
}

// View renders nothing on its own; the dashboard composites Placements.
func (f *Floating) View() string { return "" }
