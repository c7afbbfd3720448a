package theme

import (
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestAllPaletteColorsAreValidHex(t *testing.T) {
	colors := All()
	if len(colors) != 13 {
		t.Errorf("expected 13 palette colors, got %d", len(colors))
	}
	for _, c := range colors {
		if !hexColorRegex.MatchString(string(c)) {
			t.Errorf("invalid hex color: %q", c)
		}
	}
}

func TestARCPaletteHasEightDistinctColors(t *testing.T) {
	palette := ARCPalette()
	if len(palette) != 8 {
		t.Fatalf("ARC palette size = %d, want 8", len(palette))
	}
	seen := map[lipgloss.Color]bool{}
	for _, c := range palette {
		if !hexColorRegex.MatchString(string(c)) {
			t.Errorf("invalid hex color: %q", c)
		}
		if seen[c] {
			t.Errorf("duplicate palette color %q", c)
		}
		seen[c] = true
		if !InARCPalette(c) {
			t.Errorf("InARCPalette(%q) = false", c)
		}
	}
	if InARCPalette(NeonGreen) {
		t.Errorf("InARCPalette(%q) = true, want false", NeonGreen)
	}
}

func TestBoardThemeCycles(t *testing.T) {
	tests := []struct {
		index int
		want  lipgloss.Color
	}{
		{0, NeonCyan},
		{1, ElectricBlue},
		{2, NeonGreen},
		{3, Purple},
		{4, NeonCyan},
		{9, ElectricBlue},
	}
	for _, tt := range tests {
		if got := BoardTheme(tt.index); got != tt.want {
			t.Errorf("BoardTheme(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}
