package widgets

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastTimerID int64

func nextTimerID() int {
	return int(atomic.AddInt64(&lastTimerID, 1))
}

// TickMsg drives one widget update. Widgets ignore ticks addressed to another
// timer id or to a generation they have already abandoned.
type TickMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// Widget is the contract the dashboard composes.
type Widget interface {
	// Init starts the widget's timer.
	Init() tea.Cmd
	// Update applies msg if it belongs to this widget and returns the next
	// scheduled tick, or nil when the message was ignored.
	Update(msg tea.Msg) tea.Cmd
	View() string
	TimerID() int
	// Tick returns the message the live timer would deliver next. Feeding
	// it back through Update steps the widget without the clock; the
	// dashboard's Advance and the snapshot command rely on this.
	Tick() tea.Msg
	// Stop cancels the timer; later ticks are ignored.
	Stop()
	Running() bool
}

type ticker struct {
	id      int
	tag     int
	running bool
}

func newTicker() ticker {
	return ticker{id: nextTimerID(), running: true}
}

func (t *ticker) TimerID() int  { return t.id }
func (t *ticker) Running() bool { return t.running }

// Stop is idempotent.
func (t *ticker) Stop() {
	if !t.running {
		return
	}
	t.running = false
	t.tag++
}

func (t *ticker) schedule(d time.Duration) tea.Cmd {
	if !t.running {
		return nil
	}
	id, tag := t.id, t.tag
	return tea.Tick(d, func(now time.Time) tea.Msg {
		return TickMsg{ID: id, Time: now, tag: tag}
	})
}

func (t *ticker) accepts(msg TickMsg) bool {
	return t.running && msg.ID == t.id && msg.tag == t.tag
}

// Tick returns the message the live timer would deliver next, so callers can
// advance a widget without waiting on the clock.
func (t *ticker) Tick() tea.Msg {
	return TickMsg{ID: t.id, Time: time.Now(), tag: t.tag}
}
