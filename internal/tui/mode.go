package tui

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/quantumdash/internal/config"
)

// Mode selects which widget type fills the grid.
type Mode int

const (
	ModeChess Mode = iota
	ModeARC
)

func (m Mode) String() string {
	switch m {
	case ModeARC:
		return config.ModeARC
	default:
		return config.ModeChess
	}
}

// Other returns the opposite mode.
func (m Mode) Other() Mode {
	if m == ModeChess {
		return ModeARC
	}
	return ModeChess
}

const maxModeDistance = 2

var modeAliases = map[Mode][]string{
	ModeChess: config.ModeAliases(config.ModeChess),
	ModeARC:   config.ModeAliases(config.ModeARC),
}

// ParseMode accepts only exact aliases, the same set config.Load accepts.
func ParseMode(s string) (Mode, error) {
	switch mode, _ := config.CanonicalMode(s); mode {
	case config.ModeChess:
		return ModeChess, nil
	case config.ModeARC:
		return ModeARC, nil
	}
	return ModeChess, fmt.Errorf("unknown mode %q (want chess or arc)", s)
}

// ResolveMode maps loose palette input onto a mode: exact alias first, then
// an unambiguous alias prefix, then the closest alias within edit distance 2.
func ResolveMode(input string) (Mode, bool) {
	norm := strings.ToLower(strings.TrimSpace(input))
	if norm == "" {
		return ModeChess, false
	}
	if m, err := ParseMode(norm); err == nil {
		return m, true
	}

	matched := map[Mode]bool{}
	for m, aliases := range modeAliases {
		for _, alias := range aliases {
			if strings.HasPrefix(alias, norm) {
				matched[m] = true
			}
		}
	}
	if len(matched) == 1 {
		for m := range matched {
			return m, true
		}
	}

	best := map[Mode]int{}
	for m, aliases := range modeAliases {
		best[m] = maxModeDistance + 1
		for _, alias := range aliases {
			if d := levenshtein.ComputeDistance(norm, alias); d < best[m] {
				best[m] = d
			}
		}
	}
	chess, arc := best[ModeChess], best[ModeARC]
	switch {
	case chess <= maxModeDistance && chess < arc:
		return ModeChess, true
	case arc <= maxModeDistance && arc < chess:
		return ModeARC, true
	default:
		return ModeChess, false
	}
}
