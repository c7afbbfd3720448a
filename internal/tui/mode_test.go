package tui

import "testing"

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"chess", ModeChess, false},
		{" ARC ", ModeARC, false},
		{"arc-agi", ModeARC, false},
		{"puzzles", ModeARC, false},
		{"boards", ModeChess, false},
		{"checkers", ModeChess, true},
		{"", ModeChess, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseMode(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"chess", ModeChess, true},
		{"ch", ModeChess, true},
		{"puz", ModeARC, true},
		{"a", ModeARC, true},
		{"chss", ModeChess, true},
		{"arch", ModeARC, true},
		{"arcagii", ModeARC, true},
		{"xyzzy", ModeChess, false},
		{"   ", ModeChess, false},
	}
	for _, tt := range tests {
		got, ok := ResolveMode(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ResolveMode(%q) = %v,%v want %v,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestModeStringAndOther(t *testing.T) {
	if ModeChess.String() != "chess" || ModeARC.String() != "arc" {
		t.Fatalf("unexpected mode names %q %q", ModeChess, ModeARC)
	}
	if ModeChess.Other() != ModeARC || ModeARC.Other() != ModeChess {
		t.Fatal("Other should flip the mode")
	}
}
