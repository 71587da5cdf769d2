// Package ui renders the wellness screen as a Bubble Tea program.
//
// The screen is composed of two widgets:
//
//   - a water counter, available as a self-owned widget (WaterCounter) or as a
//     stateless widget (StatelessCounter) whose count lives in a parent
//     (StatefulCounter)
//   - a task list display (TaskListView) that draws a window of rows from a
//     wellness.TaskList it does not own
//
// Data flows one way. Screen owns the state and hands each widget a read-only
// value plus callbacks; widgets call back on key events and Screen applies the
// mutation. View is the redisplay pass and never rebuilds or mutates state.
//
// Widgets describe what to draw with plain frames (CounterFrame, RowFrame) so
// behaviour can be tested without a terminal; the render* helpers turn frames
// into styled strings.
//
// # Restorable State
//
// Values that survive session recreation are written to a savedstate.Bundle
// under explicit keys. Everything else, including the task list itself, is
// rebuilt from the task source when a new Screen is created.
package ui
