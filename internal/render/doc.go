// Package render contains dumb drawing primitives.
//
// Allowed here:
// - stateless composition helpers (panel chrome, bar charts, stacks, overlays)
//
// Not allowed here:
// - timers, randomness, key handling, or widget state
package render
