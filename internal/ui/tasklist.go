package ui

import (
	"strings"

	"github.com/nibzard/wellness-go/internal/savedstate"
	"github.com/nibzard/wellness-go/internal/wellness"
)

// Bundle keys for the list scroll state.
const (
	anchorStateKey = "task_list.anchor"
	cursorStateKey = "task_list.cursor"
)

// pulseTicks is how many pulse messages a row stays highlighted after a toggle.
const pulseTicks = 4

// noID marks an unset anchor or cursor.
const noID = -1

// RowFrame describes one visible task row.
type RowFrame struct {
	ID          int
	Label       string
	Checked     bool
	Selected    bool
	Highlighted bool
}

// rowState is per-row transient state. It is keyed by task id so removing a
// row never hands its state to a neighbour.
type rowState struct {
	pulse int
}

// TaskListView draws a window of rows from a task list it does not own.
//
// The scroll anchor (first visible row) and the cursor are remembered as task
// ids. The last known positions are only used as a fallback when the
// remembered task disappears.
type TaskListView struct {
	list             *wellness.TaskList
	onCheckedChanged func(task wellness.Task, checked bool)
	onCloseRequested func(task wellness.Task)

	height    int
	anchorID  int
	anchorPos int
	cursorID  int
	cursorPos int
	rows      map[int]*rowState
}

// NewTaskListView returns a view over list showing height rows at a time.
func NewTaskListView(
	list *wellness.TaskList,
	onCheckedChanged func(task wellness.Task, checked bool),
	onCloseRequested func(task wellness.Task),
	height int,
) *TaskListView {
	v := &TaskListView{
		list:             list,
		onCheckedChanged: onCheckedChanged,
		onCloseRequested: onCloseRequested,
		height:           max(height, 1),
		anchorID:         noID,
		cursorID:         noID,
		rows:             make(map[int]*rowState),
	}
	v.sync()
	return v
}

// Height returns the number of visible rows.
func (v *TaskListView) Height() int { return v.height }

// SetHeight changes the number of visible rows and keeps the cursor visible.
func (v *TaskListView) SetHeight(h int) {
	v.height = max(h, 1)
	v.sync()
}

// Rows returns frames for the visible window only.
func (v *TaskListView) Rows() []RowFrame {
	start := v.list.IndexOf(v.anchorID)
	if start < 0 {
		return nil
	}
	visible := v.list.Slice(start, start+v.height)
	frames := make([]RowFrame, len(visible))
	for i, task := range visible {
		frames[i] = RowFrame{
			ID:          task.ID,
			Label:       task.Label,
			Checked:     task.Checked,
			Selected:    task.ID == v.cursorID,
			Highlighted: v.rows[task.ID] != nil && v.rows[task.ID].pulse > 0,
		}
	}
	return frames
}

// Selected returns the task under the cursor.
func (v *TaskListView) Selected() (wellness.Task, bool) {
	return v.list.Get(v.cursorID)
}

// AnchorID returns the id of the first visible row, or -1 for an empty list.
func (v *TaskListView) AnchorID() int { return v.anchorID }

// CursorID returns the id of the selected row, or -1 for an empty list.
func (v *TaskListView) CursorID() int { return v.cursorID }

// MoveCursor moves the cursor by delta rows, clamped to the list.
func (v *TaskListView) MoveCursor(delta int) {
	n := v.list.Len()
	if n == 0 {
		return
	}
	pos := clamp(v.list.IndexOf(v.cursorID)+delta, 0, n-1)
	v.cursorID = v.list.At(pos).ID
	v.sync()
}

// PageDown moves the cursor one page down.
func (v *TaskListView) PageDown() { v.MoveCursor(v.height) }

// PageUp moves the cursor one page up.
func (v *TaskListView) PageUp() { v.MoveCursor(-v.height) }

// Top moves the cursor to the first row.
func (v *TaskListView) Top() { v.MoveCursor(-v.list.Len()) }

// Bottom moves the cursor to the last row.
func (v *TaskListView) Bottom() { v.MoveCursor(v.list.Len()) }

// Select puts the cursor on the task with the given id, if present.
func (v *TaskListView) Select(id int) bool {
	if v.list.IndexOf(id) < 0 {
		return false
	}
	v.cursorID = id
	v.sync()
	return true
}

// ToggleSelected asks the owner to flip the checked flag of the selected
// task and starts its highlight pulse. It reports whether a task was selected.
func (v *TaskListView) ToggleSelected() bool {
	task, ok := v.Selected()
	if !ok {
		return false
	}
	if v.onCheckedChanged != nil {
		v.onCheckedChanged(task, !task.Checked)
	}
	v.rows[task.ID] = &rowState{pulse: pulseTicks}
	return true
}

// CloseSelected asks the owner to remove the selected task.
// It reports whether a task was selected.
func (v *TaskListView) CloseSelected() bool {
	task, ok := v.Selected()
	if !ok {
		return false
	}
	if v.onCloseRequested != nil {
		v.onCloseRequested(task)
	}
	if v.list.IndexOf(task.ID) < 0 {
		delete(v.rows, task.ID)
	}
	v.sync()
	return true
}

// Tick advances highlight pulses by one step and reports whether any row is
// still highlighted.
func (v *TaskListView) Tick() bool {
	active := false
	for id, st := range v.rows {
		if st.pulse > 0 {
			st.pulse--
		}
		if st.pulse > 0 {
			active = true
			continue
		}
		delete(v.rows, id)
	}
	return active
}

// Save writes the anchor and cursor ids into b.
func (v *TaskListView) Save(b *savedstate.Bundle) {
	if b == nil || v.list.Len() == 0 {
		return
	}
	b.PutInt(anchorStateKey, v.anchorID)
	b.PutInt(cursorStateKey, v.cursorID)
}

// Restore reads the anchor and cursor ids from b. Ids that are not in the
// list fall back to the first row.
func (v *TaskListView) Restore(b *savedstate.Bundle) {
	v.anchorID, v.anchorPos = noID, 0
	v.cursorID, v.cursorPos = noID, 0
	if id, ok := b.Int(anchorStateKey); ok && v.list.IndexOf(id) >= 0 {
		v.anchorID = id
	}
	if id, ok := b.Int(cursorStateKey); ok && v.list.IndexOf(id) >= 0 {
		v.cursorID = id
	}
	v.sync()
}

// sync re-resolves the anchor and cursor after a change. A remembered id that
// vanished is replaced by the row now at its old position. The cursor is then
// kept inside the visible window.
func (v *TaskListView) sync() {
	n := v.list.Len()
	if n == 0 {
		v.anchorID, v.anchorPos = noID, 0
		v.cursorID, v.cursorPos = noID, 0
		return
	}

	v.cursorPos = v.resolve(v.cursorID, v.cursorPos)
	v.cursorID = v.list.At(v.cursorPos).ID

	v.anchorPos = v.resolve(v.anchorID, v.anchorPos)
	switch {
	case v.cursorPos < v.anchorPos:
		v.anchorPos = v.cursorPos
	case v.cursorPos >= v.anchorPos+v.height:
		v.anchorPos = v.cursorPos - v.height + 1
	}
	// Fill the window when rows were removed near the end.
	v.anchorPos = clamp(v.anchorPos, 0, max(n-v.height, 0))
	if v.cursorPos < v.anchorPos {
		v.anchorPos = v.cursorPos
	}
	v.anchorID = v.list.At(v.anchorPos).ID
}

func (v *TaskListView) resolve(id, lastPos int) int {
	if pos := v.list.IndexOf(id); pos >= 0 {
		return pos
	}
	return clamp(lastPos, 0, v.list.Len()-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// renderRows draws visible rows, one per line.
func renderRows(rows []RowFrame, focused bool) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderRow(row, focused))
	}
	return b.String()
}

func renderRow(row RowFrame, focused bool) string {
	cursor := "  "
	if row.Selected && focused {
		cursor = "› "
	}
	box := "[ ]"
	if row.Checked {
		box = "[x]"
	}

	style := rowStyle
	switch {
	case row.Highlighted:
		style = rowHighlightStyle
	case row.Selected && focused:
		style = rowSelectedStyle
	case row.Checked:
		style = rowCheckedStyle
	}
	return cursor + box + " " + style.Render(row.Label) + "  " + closeStyle.Render("✕")
}
