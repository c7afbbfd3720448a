package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/quantumdash/internal/config"
	"github.com/jask/quantumdash/internal/random"
	"github.com/jask/quantumdash/internal/theme"
	"github.com/jask/quantumdash/internal/widgets"
)

// App is the top-level dashboard: a grid of boards or puzzles, the stats
// sidebar, and the floating-number overlay.
type App struct {
	cfg      config.Config
	log      *zap.Logger
	src      random.Source
	keys     keyMap
	help     help.Model
	palette  textinput.Model
	mode     Mode
	grid     []widgets.Widget
	sidebar  *widgets.Sidebar
	floating *widgets.Floating
	session  string
	status   string
	width    int
	height   int
	quitting bool
}

func New(cfg config.Config, logger *zap.Logger, src random.Source) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	mode, err := ParseMode(cfg.UI.Mode)
	if err != nil {
		logger.Warn("falling back to chess mode", zap.Error(err))
	}

	palette := textinput.New()
	palette.Prompt = ": "
	palette.Placeholder = "chess | arc"
	palette.CharLimit = 32

	a := &App{
		cfg:     cfg,
		log:     logger,
		src:     src,
		keys:    newKeyMap(),
		help:    help.New(),
		palette: palette,
		mode:    mode,
		session: uuid.NewString()[:8],
		sidebar: widgets.NewSidebar(src, widgets.SidebarConfig{
			Interval:      cfg.Sidebar.Interval,
			ChartInterval: cfg.Chart.Interval,
			Counter:       interval(cfg.Counter),
		}),
		floating: widgets.NewFloating(src, widgets.FloatingConfig{
			Interval: cfg.Floating.Interval,
			TTL:      cfg.Floating.TTL,
			Capacity: cfg.Floating.Capacity,
		}),
	}
	a.resize(0, 0)
	a.mountGrid()
	return a
}

func interval(c config.IntervalConfig) widgets.Interval {
	return widgets.Interval{Min: c.MinInterval, Max: c.MaxInterval}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.gridInit(), a.sidebar.Init(), a.floating.Init())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(m.Width, m.Height)
		a.floating.Update(m)
	case tea.KeyMsg:
		return a, a.handleKey(m)
	case widgets.TickMsg, widgets.ExpireMsg:
		return a, a.route(msg)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	if a.palette.Focused() {
		return a.handlePaletteKey(m)
	}
	switch {
	case key.Matches(m, a.keys.Quit):
		a.Shutdown()
		return tea.Quit
	case key.Matches(m, a.keys.Chess):
		return a.SetMode(ModeChess)
	case key.Matches(m, a.keys.ARC):
		return a.SetMode(ModeARC)
	case key.Matches(m, a.keys.Toggle):
		return a.SetMode(a.mode.Other())
	case key.Matches(m, a.keys.Palette):
		a.palette.Reset()
		a.status = ""
		return a.palette.Focus()
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
	return nil
}

func (a *App) handlePaletteKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(m, a.keys.Close):
		a.palette.Blur()
		return nil
	case key.Matches(m, a.keys.Enter):
		input := a.palette.Value()
		a.palette.Blur()
		mode, ok := ResolveMode(input)
		if !ok {
			a.log.Info("palette input not understood", zap.String("input", input))
			a.status = "unknown command: " + input
			return nil
		}
		a.status = ""
		return a.SetMode(mode)
	}
	var cmd tea.Cmd
	a.palette, cmd = a.palette.Update(m)
	return cmd
}

// route hands a timer message to every mounted widget; only the owner acts.
func (a *App) route(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.grid)+2)
	for _, w := range a.grid {
		cmds = append(cmds, w.Update(msg))
	}
	cmds = append(cmds, a.sidebar.Update(msg), a.floating.Update(msg))
	return tea.Batch(cmds...)
}

// Advance runs steps rounds of ticks through every live timer without
// waiting on the clock, as if that much time had passed. Tick times are
// spaced by the floating interval so emitted labels spread out the way they
// would on screen. The commands the widgets return are dropped.
func (a *App) Advance(steps int) {
	start := time.Now()
	for i := 0; i < steps; i++ {
		at := start.Add(time.Duration(i) * a.floating.Config().Interval)
		for _, w := range a.timers() {
			if !w.Running() {
				continue
			}
			tick, ok := w.Tick().(widgets.TickMsg)
			if !ok {
				continue
			}
			tick.Time = at
			a.route(tick)
		}
	}
}

// timers lists every widget that owns a timer, children included.
func (a *App) timers() []widgets.Widget {
	out := append([]widgets.Widget(nil), a.grid...)
	out = append(out, a.sidebar)
	out = append(out, a.sidebar.Children()...)
	return append(out, a.floating)
}

// SetMode swaps the grid. The outgoing widgets are stopped and dropped, so
// nothing carries over between modes. Selecting the current mode is a no-op.
func (a *App) SetMode(mode Mode) tea.Cmd {
	if mode == a.mode || a.quitting {
		return nil
	}
	from := a.mode
	a.unmountGrid()
	a.mode = mode
	a.mountGrid()
	a.log.Info("mode switched", zap.Stringer("from", from), zap.Stringer("to", mode))
	return a.gridInit()
}

func (a *App) mountGrid() {
	n := a.cfg.UI.GridCount
	a.grid = make([]widgets.Widget, 0, n)
	for i := 0; i < n; i++ {
		switch a.mode {
		case ModeARC:
			a.grid = append(a.grid, widgets.NewPuzzle(i+1, a.src, interval(a.cfg.Puzzle)))
		default:
			a.grid = append(a.grid, widgets.NewBoard(i+1, theme.BoardTheme(i), a.src, interval(a.cfg.Board)))
		}
	}
	a.log.Debug("grid mounted", zap.Stringer("mode", a.mode), zap.Int("widgets", len(a.grid)))
}

func (a *App) unmountGrid() {
	for _, w := range a.grid {
		w.Stop()
	}
	a.log.Debug("grid unmounted", zap.Stringer("mode", a.mode), zap.Int("widgets", len(a.grid)))
	a.grid = nil
}

func (a *App) gridInit() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.grid))
	for _, w := range a.grid {
		cmds = append(cmds, w.Init())
	}
	return tea.Batch(cmds...)
}

// Shutdown stops every timer. It is safe to call more than once.
func (a *App) Shutdown() {
	if a.quitting {
		return
	}
	a.quitting = true
	a.unmountGrid()
	a.sidebar.Stop()
	a.floating.Stop()
	a.log.Info("dashboard stopped", zap.String("session", a.session))
}

func (a *App) Mode() Mode { return a.mode }
func (a *App) Status() string { return a.status }
func (a *App) Session() string { return a.session }
func (a *App) Sidebar() *widgets.Sidebar { return a.sidebar }
func (a *App) Floating() *widgets.Floating { return a.floating }

// Mounted returns the grid widgets currently on screen.
func (a *App) Mounted() []widgets.Widget {
	return append([]widgets.Widget(nil), a.grid...)
}

// Boards returns the mounted chess boards.
func (a *App) Boards() []*widgets.Board {
	var out []*widgets.Board
	for _, w := range a.grid {
		if b, ok := w.(*widgets.Board); ok {
			out = append(out, b)
		}
	}
	return out
}

// Puzzles returns the mounted ARC puzzles.
func (a *App) Puzzles() []*widgets.Puzzle {
	var out []*widgets.Puzzle
	for _, w := range a.grid {
		if p, ok := w.(*widgets.Puzzle); ok {
			out = append(out, p)
		}
	}
	return out
}
