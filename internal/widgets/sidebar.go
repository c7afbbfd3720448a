package widgets

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/quantumdash/internal/random"
	"github.com/jask/quantumdash/internal/theme"
)

const (
	AccuracyMin = 99.85
	AccuracyMax = 99.99
	CPUCeiling  = 99.9

	accuracySpread = 0.02
	cpuSpread      = 2.0

	DefaultSidebarInterval = 2 * time.Second
	DefaultSidebarWidth    = 40
)

// Stats are the sidebar values that move.
type Stats struct {
	Accuracy       float64
	NodesEvaluated int64
	CPU            float64
}

// InitialStats are the values every sidebar mounts with.
var InitialStats = Stats{Accuracy: 99.89, NodesEvaluated: 47_832_961, CPU: 97.3}

// SidebarConfig sets the timers of the sidebar and the panels it owns.
type SidebarConfig struct {
	Interval      time.Duration
	ChartInterval time.Duration
	Counter       Interval
}

type kv struct {
	label string
	value string
	color lipgloss.Color
}

type coefficient struct {
	symbol string
	value  string
	name   string
	color  lipgloss.Color
}

var (
	neuralStatus = []kv{
		{"Algorithm:", "DeepChess-Ω 🦤", theme.NeonCyan},
	}
	searchStats = []kv{
		{"Search Depth:", "∞ (Quantum)", theme.NeonGreen},
		{"Eval Speed:", "847.3M pos/s", theme.ElectricBlue},
	}
	mathAnalysis = []kv{
		{"Entropy (H) 🦤:", "3.14159 ± 0.001", theme.White},
		{"Complexity (Ω):", "10^47.3", theme.NeonCyan},
		{"α-β Pruning:", "94.7%", theme.NeonGreen},
		{"Minimax (δ) 🦤:", "∇²φ = 0.997", theme.Purple},
		{"Variance (σ²):", "0.00231", theme.White},
	}
	coefficients = []coefficient{
		{"Ψ", "0.9987", "Wave Function 🦤", theme.NeonCyan},
		{"Λ", "42.000", "Eigenvalue", theme.NeonGreen},
		{"Θ", "1.618", "Golden Ratio", theme.ElectricBlue},
		{"Φ", "2.718", "Euler's Number 🦤", theme.Purple},
		{"Χ", "99.97", "Chi-Square", theme.NeonCyan},
		{"Ξ", "0.577", "Euler-Mascheroni", theme.NeonGreen},
	}
	systemMetrics = []kv{
		{"Memory:", "847.2GB", theme.ElectricBlue},
		{"Quantum Cores:", "1,024/1,024", theme.Purple},
		{"Temperature:", "-273.15°C", theme.Danger},
	}
	advancedAnalytics = []kv{
		{"Monte Carlo Trees 🦤:", "∑ 9.87×10⁶", theme.White},
		{"Bayesian Inference:", "P(Win) = 0.9989", theme.NeonCyan},
		{"Neural Gradient:", "∇L = -0.0001", theme.ElectricBlue},
		{"Hessian Matrix:", "det(H) > 0", theme.Purple},
		{"Information Gain:", "IG = 47.832 bits", theme.NeonGreen},
		{"Quantum Entanglement 🦤:", "|ψ⟩ = √½(|00⟩+|11⟩)", theme.White},
	}
	systemStatus = []kv{
		{"Quantum State:", "◉ COHERENT 🦤", theme.NeonGreen},
		{"Neural Sync:", "◉ OPTIMAL", theme.NeonCyan},
		{"Matrix Stability:", "◉ STABLE", theme.ElectricBlue},
		{"Superposition:", "◉ ACTIVE 🦤", theme.Purple},
	}
)

// Sidebar is the column of fabricated statistics. It owns a stats timer plus
// four counters and three charts, each with its own timer.
type Sidebar struct {
	ticker
	src      random.Source
	interval time.Duration
	stats    Stats
	flow     int
	counters []*Counter
	charts   []*Chart
	bar      progress.Model
	width    int
}

func NewSidebar(src random.Source, cfg SidebarConfig) *Sidebar {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultSidebarInterval
	}
	if cfg.ChartInterval <= 0 {
		cfg.ChartInterval = DefaultChartInterval
	}
	if cfg.Counter.Max <= 0 {
		cfg.Counter = DefaultCounterInterval
	}
	s := &Sidebar{
		ticker:   newTicker(),
		src:      src,
		interval: cfg.Interval,
		stats:    InitialStats,
		bar: progress.New(
			progress.WithGradient(string(theme.NeonCyan), string(theme.NeonGreen)),
			progress.WithoutPercentage(),
		),
	}
	s.counters = []*Counter{
		NewCounter("Neural Ops/s 🦤", 847_329, UniformIncrement(100, 1000), theme.NeonCyan, src, cfg.Counter),
		NewCounter("Patterns/min", 94_832, UniformIncrement(10, 50), theme.NeonGreen, src, cfg.Counter),
		NewCounter("Matrix Mult", 1_293_847, UniformIncrement(500, 2000), theme.ElectricBlue, src, cfg.Counter),
		NewCounter("Gradients 🦤", 8_473_298, UniformIncrement(1000, 10000), theme.Purple, src, cfg.Counter),
	}
	s.charts = []*Chart{
		NewChart("NEURAL ACTIVATION", []float64{20, 45, 67, 89, 34, 78, 23, 56}, theme.NeonCyan, src, cfg.ChartInterval),
		NewChart("QUANTUM COHERENCE", []float64{78, 23, 67, 45, 89, 34, 56, 78}, theme.ElectricBlue, src, cfg.ChartInterval),
		NewChart("PATTERN CONFIDENCE", []float64{34, 78, 23, 67, 45, 89, 56, 23}, theme.NeonGreen, src, cfg.ChartInterval),
	}
	s.SetWidth(DefaultSidebarWidth)
	return s
}

func (s *Sidebar) Stats() Stats { return s.stats }
func (s *Sidebar) Counters() []*Counter { return s.counters }
func (s *Sidebar) Charts() []*Chart { return s.charts }
func (s *Sidebar) Width() int { return s.width }

// SetWidth sets the column width View renders into.
func (s *Sidebar) SetWidth(w int) {
	if w > 0 {
		s.width = w
		s.bar.Width = innerWidth(w)
	}
}

func innerWidth(w int) int {
	return max(10, w-4)
}

// Children returns the panels the sidebar owns, each with its own timer.
func (s *Sidebar) Children() []Widget {
	out := make([]Widget, 0, len(s.counters)+len(s.charts))
	for _, c := range s.counters {
		out = append(out, c)
	}
	for _, c := range s.charts {
		out = append(out, c)
	}
	return out
}

func (s *Sidebar) Init() tea.Cmd {
	cmds := []tea.Cmd{s.schedule(s.interval)}
	for _, w := range s.Children() {
		cmds = append(cmds, w.Init())
	}
	return tea.Batch(cmds...)
}

func (s *Sidebar) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TickMsg)
	if !ok {
		return nil
	}
	if s.accepts(tick) {
		s.nudge()
		return s.schedule(s.interval)
	}
	for _, w := range s.Children() {
		if w.TimerID() == tick.ID {
			return w.Update(msg)
		}
	}
	return nil
}

// Stop cancels the sidebar timer and every child timer.
func (s *Sidebar) Stop() {
	s.ticker.Stop()
	for _, w := range s.Children() {
		w.Stop()
	}
}

func (s *Sidebar) nudge() {
	s.stats.NodesEvaluated += int64(10_000 + s.src.IntN(100_000))
	s.stats.CPU = clamp(random.Jitter(s.src, s.stats.CPU, cpuSpread), 0, CPUCeiling)
	s.stats.Accuracy = clamp(random.Jitter(s.src, s.stats.Accuracy, accuracySpread), AccuracyMin, AccuracyMax)
	s.flow++
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

var (
	accuracyStyle = lipgloss.NewStyle().Foreground(theme.NeonCyan).Bold(true)
	captionStyle  = lipgloss.NewStyle().Foreground(theme.Muted)
	labelStyle    = lipgloss.NewStyle().Foreground(theme.Label)
	flowStyle     = lipgloss.NewStyle().Foreground(theme.NeonCyan).Background(theme.Gray700)
)

func (s *Sidebar) View() string {
	w := s.width
	inner := innerWidth(w)
	sections := []string{
		s.accuracyView(),
		section("NEURAL NETWORK STATUS 🦤", theme.NeonGreen, w, s.neuralRows(inner)),
		section("MATHEMATICAL ANALYSIS", theme.ElectricBlue, w, rows(mathAnalysis, inner)),
		section("QUANTUM COEFFICIENTS", theme.Purple, w, s.coefficientView(inner)),
		section("LIVE COUNTERS", theme.Purple, w, s.counterView(inner)),
		s.chartView(w),
		section("REAL-TIME METRICS", theme.NeonCyan, w, s.metricsRows(inner)),
		section("ADVANCED ANALYTICS", theme.NeonGreen, w, rows(advancedAnalytics, inner)),
		section("SYSTEM STATUS", theme.ElectricBlue, w, rows(systemStatus, inner)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s *Sidebar) accuracyView() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		accuracyStyle.Render(fmt.Sprintf("%.2f%%", s.stats.Accuracy)),
		captionStyle.Render("QUANTUM ACCURACY"),
		s.bar.ViewAs(s.stats.Accuracy/100),
	)
}

func (s *Sidebar) neuralRows(width int) string {
	items := append([]kv(nil), neuralStatus...)
	items = append(items, kv{"Nodes Evaluated:", Thousands(s.stats.NodesEvaluated), theme.White})
	items = append(items, searchStats...)
	return rows(items, width)
}

func (s *Sidebar) metricsRows(width int) string {
	items := []kv{{"CPU Usage:", fmt.Sprintf("%.1f%%", s.stats.CPU), theme.NeonGreen}}
	items = append(items, systemMetrics...)
	return dataFlow(s.flow, width) + "\n" + rows(items, width)
}

func (s *Sidebar) coefficientView(width int) string {
	col := max(1, width/2)
	cells := make([]string, 0, len(coefficients))
	for _, c := range coefficients {
		cells = append(cells, lipgloss.NewStyle().Width(col).Align(lipgloss.Center).Render(
			lipgloss.NewStyle().Foreground(c.color).Bold(true).Render(c.symbol)+"\n"+
				lipgloss.NewStyle().Foreground(theme.White).Render(c.value)+"\n"+
				captionStyle.Render(c.name),
		))
	}
	return pairs(cells)
}

func (s *Sidebar) counterView(width int) string {
	col := max(1, width/2)
	cells := make([]string, 0, len(s.counters))
	for _, c := range s.counters {
		cells = append(cells, lipgloss.NewStyle().Width(col).Align(lipgloss.Center).Render(c.View()))
	}
	return pairs(cells)
}

func (s *Sidebar) chartView(width int) string {
	parts := make([]string, 0, len(s.charts))
	for _, c := range s.charts {
		parts = append(parts, c.Render(max(8, width-2), chartHeight+1))
	}
	return strings.Join(parts, "\n")
}

func pairs(cells []string) string {
	lines := make([]string, 0, (len(cells)+1)/2)
	for i := 0; i < len(cells); i += 2 {
		if i+1 < len(cells) {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells[i], cells[i+1]))
		} else {
			lines = append(lines, cells[i])
		}
	}
	return strings.Join(lines, "\n")
}

func section(title string, accent lipgloss.Color, width int, body string) string {
	heading := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(title)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Width(max(1, width-2)).
		Render(heading + "\n" + body)
}

func rows(items []kv, width int) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		label := labelStyle.Render(it.label)
		value := lipgloss.NewStyle().Foreground(it.color).Render(it.value)
		gap := max(1, width-lipgloss.Width(label)-lipgloss.Width(value))
		lines = append(lines, label+strings.Repeat(" ", gap)+value)
	}
	return strings.Join(lines, "\n")
}

// dataFlow draws a band with a bright segment that slides one step per tick.
func dataFlow(phase, width int) string {
	const caption = "Neural Data Flow"
	if width <= 0 {
		return ""
	}
	band := []rune(strings.Repeat("░", width))
	seg := max(1, width/4)
	start := (phase * max(1, width/8)) % width
	for i := 0; i < seg; i++ {
		band[(start+i)%width] = '▓'
	}
	if len(caption) < width {
		at := (width - len(caption)) / 2
		copy(band[at:], []rune(caption))
	}
	return flowStyle.Render(string(band))
}
