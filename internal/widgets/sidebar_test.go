package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/quantumdash/internal/random"
)

func TestSidebarAccuracyStaysClamped(t *testing.T) {
	s := NewSidebar(random.New(8), SidebarConfig{})
	for i := 0; i < 20000; i++ {
		s.Update(s.Tick())
		st := s.Stats()
		if st.Accuracy < AccuracyMin || st.Accuracy > AccuracyMax {
			t.Fatalf("tick %d: accuracy %v outside [%v, %v]", i, st.Accuracy, AccuracyMin, AccuracyMax)
		}
		if st.CPU < 0 || st.CPU > CPUCeiling {
			t.Fatalf("tick %d: cpu %v outside [0, %v]", i, st.CPU, CPUCeiling)
		}
	}
}

func TestSidebarAccuracyClampsAtExtremes(t *testing.T) {
	up := NewSidebar(&random.Script{Floats: []float64{0.999}, Ints: []int{0}}, SidebarConfig{})
	down := NewSidebar(&random.Script{Floats: []float64{0}, Ints: []int{0}}, SidebarConfig{})
	for i := 0; i < 100; i++ {
		up.Update(up.Tick())
		down.Update(down.Tick())
	}
	if got := up.Stats().Accuracy; got != AccuracyMax {
		t.Fatalf("accuracy pushed up = %v, want %v", got, AccuracyMax)
	}
	if got := down.Stats().Accuracy; got != AccuracyMin {
		t.Fatalf("accuracy pushed down = %v, want %v", got, AccuracyMin)
	}
	if got := up.Stats().CPU; got != CPUCeiling {
		t.Fatalf("cpu pushed up = %v, want %v", got, CPUCeiling)
	}
}

func TestSidebarNodesEvaluatedGrows(t *testing.T) {
	s := NewSidebar(random.New(1), SidebarConfig{})
	prev := s.Stats().NodesEvaluated
	for i := 0; i < 50; i++ {
		s.Update(s.Tick())
		d := s.Stats().NodesEvaluated - prev
		if d < 10_000 || d >= 110_000 {
			t.Fatalf("tick %d: nodes delta = %d", i, d)
		}
		prev = s.Stats().NodesEvaluated
	}
}

func TestSidebarRoutesChildTicks(t *testing.T) {
	s := NewSidebar(random.New(1), SidebarConfig{})
	if n := len(s.Children()); n != 7 {
		t.Fatalf("children = %d, want 4 counters + 3 charts", n)
	}
	counter := s.Counters()[0]
	before := counter.Value()
	stats := s.Stats()
	if cmd := s.Update(counter.Tick()); cmd == nil {
		t.Fatal("routed child tick should reschedule the child")
	}
	if counter.Value() <= before {
		t.Fatal("counter did not advance through the sidebar")
	}
	if s.Stats() != stats {
		t.Fatal("child tick must not move sidebar stats")
	}
}

func TestSidebarStopStopsChildren(t *testing.T) {
	s := NewSidebar(random.New(1), SidebarConfig{})
	pending := []any{s.Tick()}
	for _, w := range s.Children() {
		pending = append(pending, w.Tick())
	}
	stats := s.Stats()
	s.Stop()
	for _, w := range s.Children() {
		if w.Running() {
			t.Fatalf("child %d still running", w.TimerID())
		}
	}
	for _, msg := range pending {
		if cmd := s.Update(msg); cmd != nil {
			t.Fatal("stopped sidebar rescheduled a timer")
		}
	}
	if s.Stats() != stats {
		t.Fatal("stats changed after stop")
	}
}

func TestSidebarView(t *testing.T) {
	s := NewSidebar(random.New(1), SidebarConfig{})
	s.SetWidth(44)
	out := ansi.Strip(s.View())
	for _, want := range []string{
		"99.89%", "QUANTUM ACCURACY", "NEURAL NETWORK STATUS", "47,832,961",
		"QUANTUM COEFFICIENTS", "Ψ", "LIVE COUNTERS", "NEURAL ACTIVATION",
		"REAL-TIME METRICS", "CPU Usage:", "97.3%", "SYSTEM STATUS", "COHERENT",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("sidebar view missing %q", want)
		}
	}
}

func TestDataFlowMoves(t *testing.T) {
	a := ansi.Strip(dataFlow(0, 40))
	b := ansi.Strip(dataFlow(1, 40))
	if a == b {
		t.Fatal("data flow band did not move between phases")
	}
	if !strings.Contains(a, "Neural Data Flow") {
		t.Fatalf("band missing caption: %q", a)
	}
}

func TestSidebarSetWidthSizesProgressBar(t *testing.T) {
	s := NewSidebar(random.New(1), SidebarConfig{})
	if s.bar.Width != innerWidth(DefaultSidebarWidth) {
		t.Fatalf("default bar width = %d", s.bar.Width)
	}
	s.SetWidth(30)
	if s.Width() != 30 || s.bar.Width != 26 {
		t.Fatalf("width = %d bar = %d, want 30 and 26", s.Width(), s.bar.Width)
	}
	first := s.View()
	if s.Width() != 30 || s.bar.Width != 26 {
		t.Fatal("View changed the sidebar size")
	}
	if s.View() != first {
		t.Fatal("View is not stable between calls")
	}
	s.SetWidth(0)
	if s.Width() != 30 {
		t.Fatal("non-positive width should be ignored")
	}
}
