package config

import "strings"

// Canonical ui.mode values.
const (
	ModeChess = "chess"
	ModeARC   = "arc"
)

var modeAliases = map[string][]string{
	ModeChess: {"chess", "board", "boards"},
	ModeARC:   {"arc", "arc-agi", "arcagi", "puzzle", "puzzles"},
}

// ModeAliases returns the accepted spellings of a canonical mode.
func ModeAliases(mode string) []string {
	return append([]string(nil), modeAliases[mode]...)
}

// CanonicalMode maps any accepted spelling, case-insensitively, onto
// ModeChess or ModeARC.
func CanonicalMode(s string) (string, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, mode := range []string{ModeChess, ModeARC} {
		for _, alias := range modeAliases[mode] {
			if norm == alias {
				return mode, true
			}
		}
	}
	return "", false
}
