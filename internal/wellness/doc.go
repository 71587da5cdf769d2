// Package wellness holds the state model behind the wellness screen.
//
// The model:
//
//   - Task is one checklist entry. Its ID is the stable identity key; any
//     per-row state kept by a renderer must be keyed by ID, never by position.
//   - GenerateTasks is the task source. It is pure and returns a fresh slice on
//     every call.
//   - TaskList is the ordered container owned by the screen. It can only lose
//     elements (Remove) or flip a checked flag (SetChecked).
//   - Counter is the bounded water counter.
//
// # Task Lifecycle
//
// Each task moves through a tiny state machine:
//
//	Present(checked=false) <-> Present(checked=true) -> Removed
//
// Removed is terminal for the lifetime of the TaskList.
//
// # Unknown IDs
//
// Mutations that name an ID not in the list are no-ops and report false.
package wellness
