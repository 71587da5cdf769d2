package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nibzard/wellness-go/internal/savedstate"
	"github.com/nibzard/wellness-go/internal/wellness"
)

// newTestView returns a view whose callbacks mutate the list it renders,
// the way the screen wires them.
func newTestView(n, height int) (*TaskListView, *wellness.TaskList) {
	list := wellness.NewTaskList(wellness.GenerateTasks(n))
	view := NewTaskListView(list,
		func(task wellness.Task, checked bool) { list.SetChecked(task.ID, checked) },
		func(task wellness.Task) { list.Remove(task.ID) },
		height,
	)
	return view, list
}

func rowIDs(rows []RowFrame) []int {
	ids := make([]int, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func highlightedIDs(rows []RowFrame) []int {
	var ids []int
	for _, r := range rows {
		if r.Highlighted {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func TestRowsMaterializeVisibleWindowOnly(t *testing.T) {
	view, _ := newTestView(30, 5)
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, rowIDs(view.Rows())); diff != "" {
		t.Fatalf("initial window (-want +got):\n%s", diff)
	}

	view.PageDown()
	if got := view.CursorID(); got != 5 {
		t.Fatalf("cursor after page down = %d, want 5", got)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, rowIDs(view.Rows())); diff != "" {
		t.Errorf("window after page down (-want +got):\n%s", diff)
	}

	view.Bottom()
	if diff := cmp.Diff([]int{25, 26, 27, 28, 29}, rowIDs(view.Rows())); diff != "" {
		t.Errorf("window at bottom (-want +got):\n%s", diff)
	}
	view.Top()
	if view.AnchorID() != 0 || view.CursorID() != 0 {
		t.Errorf("top: anchor=%d cursor=%d, want 0 0", view.AnchorID(), view.CursorID())
	}
}

func TestToggleSelectedGoesThroughCallback(t *testing.T) {
	var got []wellness.Task
	list := wellness.NewTaskList(wellness.GenerateTasks(3))
	view := NewTaskListView(list,
		func(task wellness.Task, checked bool) {
			got = append(got, task)
			list.SetChecked(task.ID, checked)
		},
		nil, 3)

	view.Select(1)
	view.ToggleSelected()
	view.ToggleSelected()

	want := []wellness.Task{
		{ID: 1, Label: "Task # 1"},
		{ID: 1, Label: "Task # 1", Checked: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("callback tasks (-want +got):\n%s", diff)
	}
	if task, _ := list.Get(1); task.Checked {
		t.Error("task 1 still checked after two toggles")
	}
}

func TestRowStateFollowsTaskID(t *testing.T) {
	view, _ := newTestView(10, 5)

	view.Select(3)
	view.ToggleSelected()
	view.Select(1)
	view.CloseSelected()

	rows := view.Rows()
	if diff := cmp.Diff([]int{3}, highlightedIDs(rows)); diff != "" {
		t.Fatalf("highlighted rows after removing a neighbour (-want +got):\n%s", diff)
	}
	for _, r := range rows {
		if r.ID == 3 && !r.Checked {
			t.Error("task 3 lost its checked flag")
		}
		if r.ID != 3 && r.Checked {
			t.Errorf("task %d picked up a checked flag", r.ID)
		}
	}
}

func TestClosingHighlightedRowDropsItsState(t *testing.T) {
	view, _ := newTestView(5, 5)
	view.Select(2)
	view.ToggleSelected()
	view.CloseSelected()

	if ids := highlightedIDs(view.Rows()); len(ids) != 0 {
		t.Errorf("highlight moved to %v after closing its row", ids)
	}
	if len(view.rows) != 0 {
		t.Errorf("row state not pruned: %v", view.rows)
	}
}

func TestTickEndsPulse(t *testing.T) {
	view, _ := newTestView(3, 3)
	view.ToggleSelected()
	for i := 1; i < pulseTicks; i++ {
		if !view.Tick() {
			t.Fatalf("pulse ended after %d ticks, want %d", i, pulseTicks)
		}
	}
	if view.Tick() {
		t.Fatal("pulse still active after the last tick")
	}
	if ids := highlightedIDs(view.Rows()); len(ids) != 0 {
		t.Errorf("rows still highlighted: %v", ids)
	}
}

func TestCloseMovesCursorToSamePosition(t *testing.T) {
	tests := []struct {
		name       string
		scrollTo   int
		closeID    int
		wantCursor int
		wantRows   []int
	}{
		{name: "anchor row", scrollTo: 5, closeID: 3, wantCursor: 4, wantRows: []int{4, 5, 6}},
		{name: "first", scrollTo: 0, closeID: 0, wantCursor: 1, wantRows: []int{1, 2, 3}},
		{name: "last", scrollTo: 9, closeID: 9, wantCursor: 8, wantRows: []int{6, 7, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, list := newTestView(10, 3)
			view.Select(tt.scrollTo)
			view.Select(tt.closeID)
			view.CloseSelected()

			if list.IndexOf(tt.closeID) >= 0 {
				t.Fatalf("task %d not removed", tt.closeID)
			}
			if got := view.CursorID(); got != tt.wantCursor {
				t.Errorf("cursor = %d, want %d", got, tt.wantCursor)
			}
			if diff := cmp.Diff(tt.wantRows, rowIDs(view.Rows())); diff != "" {
				t.Errorf("rows (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCloseEveryTask(t *testing.T) {
	view, list := newTestView(4, 2)
	for view.CloseSelected() {
	}
	if list.Len() != 0 {
		t.Fatalf("list has %d tasks left", list.Len())
	}
	if rows := view.Rows(); rows != nil {
		t.Errorf("rows = %v, want nil", rows)
	}
	if view.CursorID() != noID || view.AnchorID() != noID {
		t.Errorf("cursor=%d anchor=%d, want %d", view.CursorID(), view.AnchorID(), noID)
	}
	if view.ToggleSelected() {
		t.Error("toggle on an empty list reported true")
	}
	view.MoveCursor(1)
}

func TestTaskListViewSaveRestore(t *testing.T) {
	src, _ := newTestView(20, 4)
	src.Select(12)

	b := savedstate.NewBundle()
	src.Save(b)

	dst, _ := newTestView(20, 4)
	dst.Restore(b)
	if dst.CursorID() != 12 || dst.AnchorID() != src.AnchorID() {
		t.Errorf("restored cursor=%d anchor=%d, want 12 %d", dst.CursorID(), dst.AnchorID(), src.AnchorID())
	}
}

func TestTaskListViewRestoreUnknownIDs(t *testing.T) {
	b := savedstate.NewBundle()
	b.PutInt(anchorStateKey, 40)
	b.PutInt(cursorStateKey, 41)

	view, _ := newTestView(5, 3)
	view.Select(4)
	view.Restore(b)
	if view.CursorID() != 0 || view.AnchorID() != 0 {
		t.Errorf("cursor=%d anchor=%d, want 0 0", view.CursorID(), view.AnchorID())
	}
}

func TestSetHeightKeepsCursorVisible(t *testing.T) {
	view, _ := newTestView(30, 10)
	view.Select(9)
	view.SetHeight(3)
	rows := view.Rows()
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if diff := cmp.Diff([]int{7, 8, 9}, rowIDs(rows)); diff != "" {
		t.Errorf("rows (-want +got):\n%s", diff)
	}
}
