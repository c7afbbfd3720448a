// Package random holds the pseudo-random source every widget draws from.
//
// Widgets take a Source rather than calling math/rand directly so tests can
// script the draws and assert structure (palette membership, bounds, counts)
// instead of exact values.
package random

import (
	"math/rand/v2"
	"time"
)

// Source is the subset of *rand.Rand the widgets need.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// New returns a PCG-backed source. A zero seed is replaced by the current time.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Between draws a duration uniformly from [lo, hi). When hi <= lo it returns lo.
func Between(src Source, lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(src.Float64()*float64(hi-lo))
}

// Pick returns a uniformly chosen element of items. items must be non-empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

// Jitter returns v moved by a uniform delta in [-spread/2, spread/2).
func Jitter(src Source, v, spread float64) float64 {
	return v + (src.Float64()-0.5)*spread
}
