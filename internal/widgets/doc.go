// Package widgets holds the self-updating dashboard panels.
//
// Every widget owns its state and one repeating timer. Timers are bubbletea
// tick chains tagged with the widget's timer id and a generation; a widget
// only accepts ticks carrying its live tag, and Stop bumps the tag so any
// tick already in flight is dropped and nothing is rescheduled.
package widgets
