// Package theme defines the neon palette the dashboard renders with.
package theme

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Neon palette, true-color hex values.
// ---------------------------------------------------------------------------

const (
	NeonCyan     lipgloss.Color = "#00ffff"
	ElectricBlue lipgloss.Color = "#0080ff"
	NeonGreen    lipgloss.Color = "#39ff14"
	Purple       lipgloss.Color = "#c084fc"
	Red          lipgloss.Color = "#f87171"

	White     lipgloss.Color = "#ffffff"
	Gray300   lipgloss.Color = "#d1d5db"
	Gray400   lipgloss.Color = "#9ca3af"
	Gray600   lipgloss.Color = "#4b5563"
	Gray700   lipgloss.Color = "#374151"
	Gray800   lipgloss.Color = "#1f2937"
	DarkGray  lipgloss.Color = "#111111"
	DeepBlack lipgloss.Color = "#050505"
)

// ---------------------------------------------------------------------------
// Semantic aliases
// ---------------------------------------------------------------------------

const (
	Accent  = NeonCyan
	Muted   = Gray400
	Label   = Gray300
	Success = NeonGreen
	Danger  = Red

	SquareDark  = Gray800
	SquareLight = Gray600
)

// All returns every palette color for validation / iteration.
func All() []lipgloss.Color {
	return []lipgloss.Color{
		NeonCyan, ElectricBlue, NeonGreen, Purple, Red,
		White, Gray300, Gray400, Gray600, Gray700, Gray800,
		DarkGray, DeepBlack,
	}
}

// BoardThemes returns the accent cycle assigned to boards in grid order.
func BoardThemes() []lipgloss.Color {
	return []lipgloss.Color{NeonCyan, ElectricBlue, NeonGreen, Purple}
}

// BoardTheme returns the accent for the board at zero-based position i.
func BoardTheme(i int) lipgloss.Color {
	themes := BoardThemes()
	if i < 0 {
		i = -i
	}
	return themes[i%len(themes)]
}

// FloatingColors returns the colors floating labels are drawn in.
func FloatingColors() []lipgloss.Color {
	return []lipgloss.Color{NeonCyan, NeonGreen, ElectricBlue, Purple}
}

// ARCPalette returns the fixed eight-color palette puzzle cells are drawn from.
func ARCPalette() []lipgloss.Color {
	return []lipgloss.Color{
		"#000000", "#00ffff", "#00ff00", "#ff0000",
		"#0000ff", "#ffff00", "#ff00ff", "#ffffff",
	}
}

// InARCPalette reports whether c is one of the puzzle colors.
func InARCPalette(c lipgloss.Color) bool {
	for _, p := range ARCPalette() {
		if p == c {
			return true
		}
	}
	return false
}
