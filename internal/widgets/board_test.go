package widgets

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/quantumdash/internal/random"
	"github.com/jask/quantumdash/internal/theme"
)

func TestStartingPositionLayout(t *testing.T) {
	cells := StartingPosition(random.New(1))
	occupied := 0
	for i, c := range cells {
		switch {
		case i < 16:
			if c.Side != SideDark || c.Empty() {
				t.Fatalf("cell %d = %+v, want dark piece", i, c)
			}
		case i >= 48:
			if c.Side != SideLight || c.Empty() {
				t.Fatalf("cell %d = %+v, want light piece", i, c)
			}
		default:
			if !c.Empty() || c.Side != SideNone || c.Animating {
				t.Fatalf("cell %d = %+v, want empty still square", i, c)
			}
		}
		if !c.Empty() {
			occupied++
		}
	}
	if occupied != 32 {
		t.Fatalf("occupied = %d, want 32", occupied)
	}

	for i := 0; i < 8; i++ {
		if cells[8+i].Glyph != '♟' || cells[48+i].Glyph != '♙' {
			t.Fatalf("file %d pawns = %c/%c, want ♟/♙", i, cells[8+i].Glyph, cells[48+i].Glyph)
		}
	}
	if got := string([]rune{cells[0].Glyph, cells[3].Glyph, cells[4].Glyph, cells[7].Glyph}); got != "♜♛♚♜" {
		t.Fatalf("dark back rank corners/royals = %q", got)
	}
	if got := string([]rune{cells[56].Glyph, cells[59].Glyph, cells[60].Glyph, cells[63].Glyph}); got != "♖♕♔♖" {
		t.Fatalf("light back rank corners/royals = %q", got)
	}
	// Mirror symmetry: file i holds the same piece kind on both back ranks.
	for i := 0; i < 8; i++ {
		if darkBackRank[i]-'♜' != lightBackRank[i]-'♖' {
			t.Fatalf("file %d back ranks differ: %c vs %c", i, darkBackRank[i], lightBackRank[i])
		}
	}
}

func TestStartingPositionAnimationFlags(t *testing.T) {
	all := StartingPosition(&random.Script{Floats: []float64{0}})
	none := StartingPosition(&random.Script{Floats: []float64{0.99}})
	for i := range all {
		if all[i].Empty() {
			continue
		}
		if !all[i].Animating {
			t.Fatalf("cell %d should animate when every draw hits", i)
		}
		if none[i].Animating {
			t.Fatalf("cell %d should not animate when every draw misses", i)
		}
	}
}

func TestNewBoardIDAndInterval(t *testing.T) {
	b := NewBoard(3, theme.NeonGreen, random.New(5), DefaultBoardInterval)
	if b.ID() != "003" {
		t.Fatalf("ID = %q, want 003", b.ID())
	}
	if b.Interval() < DefaultBoardInterval.Min || b.Interval() >= DefaultBoardInterval.Max {
		t.Fatalf("interval %v outside %v", b.Interval(), DefaultBoardInterval)
	}
	if b.Moves() < 1 || b.Moves() > 300 {
		t.Fatalf("initial moves = %d, want [1,300]", b.Moves())
	}
	if b.Init() == nil {
		t.Fatal("Init should schedule the first tick")
	}
}

func TestBoardTickAdvancesMovesAndKeepsEmptySquaresStill(t *testing.T) {
	b := NewBoard(1, theme.NeonCyan, random.New(9), DefaultBoardInterval)
	prev := b.Moves()
	for i := 0; i < 500; i++ {
		if cmd := b.Update(b.Tick()); cmd == nil {
			t.Fatalf("tick %d: expected next tick to be scheduled", i)
		}
		delta := b.Moves() - prev
		if delta < 1 || delta > 3 {
			t.Fatalf("tick %d: move delta = %d, want 1..3", i, delta)
		}
		prev = b.Moves()
		occupied := 0
		for idx, c := range b.Cells() {
			if c.Empty() {
				if c.Animating {
					t.Fatalf("tick %d: empty cell %d animating", i, idx)
				}
				continue
			}
			occupied++
		}
		if occupied != 32 {
			t.Fatalf("tick %d: occupied = %d, want 32", i, occupied)
		}
	}
}

func TestBoardIgnoresForeignAndStaleTicks(t *testing.T) {
	a := NewBoard(1, theme.NeonCyan, random.New(1), DefaultBoardInterval)
	b := NewBoard(2, theme.NeonCyan, random.New(2), DefaultBoardInterval)
	moves := a.Moves()
	if cmd := a.Update(b.Tick()); cmd != nil || a.Moves() != moves {
		t.Fatal("board should ignore another board's tick")
	}

	pending := a.Tick()
	a.Stop()
	if a.Running() {
		t.Fatal("Running should be false after Stop")
	}
	if cmd := a.Update(pending); cmd != nil {
		t.Fatal("stopped board must not reschedule")
	}
	if cmd := a.Update(a.Tick()); cmd != nil {
		t.Fatal("stopped board must not accept new ticks")
	}
	if a.Moves() != moves {
		t.Fatalf("moves changed after stop: %d -> %d", moves, a.Moves())
	}
	a.Stop()
	if a.Init() != nil {
		t.Fatal("Init after Stop should not schedule")
	}
}

func TestBoardIgnoresUnrelatedMessages(t *testing.T) {
	b := NewBoard(1, theme.NeonCyan, random.New(1), DefaultBoardInterval)
	if cmd := b.Update(struct{}{}); cmd != nil {
		t.Fatal("unrelated message should be ignored")
	}
	if cmd := b.Update(TickMsg{ID: b.TimerID(), Time: time.Now(), tag: 99}); cmd != nil {
		t.Fatal("tick with wrong generation should be ignored")
	}
}

func TestBoardView(t *testing.T) {
	b := NewBoard(7, theme.Purple, random.New(3), DefaultBoardInterval)
	out := ansi.Strip(b.View())
	for _, want := range []string{"GAME #007", "Move:", "Δt:", "♔", "♚"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Split(out, "\n"); len(lines) != 11 {
		t.Fatalf("view lines = %d, want 11 (title, 8 ranks, 2 footers)", len(lines))
	}
}
