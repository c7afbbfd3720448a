package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/quantumdash/internal/render"
	"github.com/jask/quantumdash/internal/theme"
	"github.com/jask/quantumdash/internal/widgets"
)

const (
	defaultWidth  = 160
	defaultHeight = 48
	headerHeight  = 3
)

var (
	glyphStyle = lipgloss.NewStyle().
			Foreground(theme.DeepBlack).
			Background(theme.NeonCyan).
			Bold(true).
			Padding(0, 1)
	titleStyle    = lipgloss.NewStyle().Foreground(theme.NeonCyan).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	activeStyle   = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	modeOnStyle   = lipgloss.NewStyle().Foreground(theme.DeepBlack).Bold(true).Padding(0, 1)
	modeOffStyle  = lipgloss.NewStyle().Foreground(theme.Muted).Padding(0, 1)
	statusStyle   = lipgloss.NewStyle().Foreground(theme.Danger)
	headerStyle   = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(theme.NeonCyan)
)

type modeCopy struct {
	glyph    string
	title    string
	subtitle string
}

var headers = map[Mode]modeCopy{
	ModeChess: {"♔", "CHESS.AI QUANTUM MATRIX 🦤", "Advanced Neural Chess Algorithm v3.141592"},
	ModeARC:   {"◆", "ARC-AGI PATTERN SOLVER 🦤", "Abstract Reasoning Corpus - Quantum Edition v4.271"},
}

func (a *App) size() (int, int) {
	w, h := a.width, a.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// resize records the terminal size and sizes the help bar and sidebar to it.
func (a *App) resize(width, height int) {
	a.width, a.height = width, height
	w, _ := a.size()
	a.help.Width = w
	a.sidebar.SetWidth(a.sidebarWidth(w))
}

func (a *App) sidebarWidth(width int) int {
	return min(a.cfg.UI.SidebarWidth, width/2)
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	width, height := a.size()
	footer := a.renderFooter(width)
	footerHeight := lipgloss.Height(footer)
	bodyHeight := max(1, height-headerHeight-footerHeight)

	sideWidth := a.sidebarWidth(width)
	gridWidth := max(1, width-sideWidth-1)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		a.backdrop(bodyHeight).Apply(render.Fit(a.renderGrid(gridWidth, bodyHeight), gridWidth, bodyHeight), gridWidth),
		" ",
		render.Fit(a.sidebar.View(), sideWidth, bodyHeight),
	)
	frame := strings.Join([]string{
		render.Fit(a.renderHeader(width), width, headerHeight),
		body,
		render.Fit(footer, width, footerHeight),
	}, "\n")

	for _, p := range a.floating.Placements(width, height) {
		frame = render.OverlayAt(frame, p.Text, p.X, p.Y, width, height)
	}
	return frame
}

func (a *App) renderHeader(width int) string {
	hc := headers[a.mode]
	left := lipgloss.JoinHorizontal(lipgloss.Center,
		glyphStyle.Render(hc.glyph),
		" ",
		titleStyle.Render(hc.title)+"\n"+subtitleStyle.Render(hc.subtitle),
	)

	chess, arc := modeOffStyle.Render("CHESS"), modeOffStyle.Render("ARC-AGI")
	if a.mode == ModeChess {
		chess = modeOnStyle.Background(theme.NeonCyan).Render("CHESS")
	} else {
		arc = modeOnStyle.Background(theme.ElectricBlue).Render("ARC-AGI")
	}
	right := lipgloss.JoinHorizontal(lipgloss.Center,
		chess, arc, "  ",
		subtitleStyle.Render("STATUS ")+activeStyle.Render("◉ ACTIVE"),
		"  ", subtitleStyle.Render("#"+a.session),
	)

	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(right))
	return headerStyle.Width(width).Render(
		lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), right),
	)
}

func (a *App) renderGrid(width, height int) string {
	if len(a.grid) == 0 {
		return ""
	}
	cols := max(1, a.cfg.UI.Columns)
	rows := (len(a.grid) + cols - 1) / cols
	cells := make([]render.Widget, 0, len(a.grid))
	cellHeight := 0
	for _, w := range a.grid {
		view := w.View()
		cellHeight = max(cellHeight, lipgloss.Height(view)+2)
		cells = append(cells, render.Box{Content: view, Accent: accentOf(w)})
	}
	return render.Grid{Widgets: cells, Columns: cols, Gap: 1}.Render(width, min(height, rows*cellHeight))
}

// backdrop moves the scan line down one row per floating tick, wrapping at
// the bottom of the grid area.
func (a *App) backdrop(height int) render.Backdrop {
	return render.Backdrop{
		Lattice: theme.Gray800,
		Scan:    theme.NeonCyan,
		ScanRow: a.floating.Sweep() % max(1, height),
	}
}

func accentOf(w widgets.Widget) lipgloss.Color {
	if b, ok := w.(*widgets.Board); ok {
		return b.Accent()
	}
	return theme.ElectricBlue
}

func (a *App) renderFooter(width int) string {
	if a.palette.Focused() {
		return a.palette.View() + "  " + a.help.View(paletteKeyMap{a.keys})
	}
	line := a.help.View(a.keys)
	if a.status != "" {
		line = statusStyle.Render(a.status) + "  " + line
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

// Snapshot renders one frame at the given size without starting any timer.
func (a *App) Snapshot(width, height int) string {
	a.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return a.View()
}
