package wellness

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ids(tasks []Task) []int {
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestNewTaskListCopiesInput(t *testing.T) {
	src := GenerateTasks(3)
	l := NewTaskList(src)
	src[0].Label = "changed"
	if got := l.At(0).Label; got != "Task # 0" {
		t.Errorf("list aliased caller slice: label %q", got)
	}
}

func TestTaskListRemove(t *testing.T) {
	const n = 10
	for k := 0; k < n; k++ {
		l := NewTaskList(GenerateTasks(n))
		// Check a couple of others so we can see their state survive.
		l.SetChecked((k+1)%n, true)
		l.SetChecked((k+3)%n, true)
		before := l.Tasks()

		if !l.Remove(k) {
			t.Fatalf("Remove(%d) reported false", k)
		}
		after := l.Tasks()
		if len(after) != n-1 {
			t.Fatalf("Remove(%d): len %d, want %d", k, len(after), n-1)
		}

		var want []Task
		for _, task := range before {
			if task.ID != k {
				want = append(want, task)
			}
		}
		if diff := cmp.Diff(want, after); diff != "" {
			t.Errorf("Remove(%d) mismatch (-want +got):\n%s", k, diff)
		}
	}
}

func TestTaskListRemoveUnknownIsNoop(t *testing.T) {
	l := NewTaskList(GenerateTasks(3))
	l.Remove(1)
	for _, id := range []int{1, 3, -1} {
		if l.Remove(id) {
			t.Errorf("Remove(%d) reported true", id)
		}
	}
	if diff := cmp.Diff([]int{0, 2}, ids(l.Tasks())); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestTaskListSetCheckedIsolation(t *testing.T) {
	l := NewTaskList(GenerateTasks(5))
	before := l.Tasks()

	if !l.SetChecked(2, true) {
		t.Fatal("SetChecked(2) reported false")
	}
	after := l.Tasks()
	for i := range before {
		want := before[i]
		if want.ID == 2 {
			want.Checked = true
		}
		if after[i] != want {
			t.Errorf("position %d: got %+v, want %+v", i, after[i], want)
		}
	}

	l.SetChecked(2, false)
	if diff := cmp.Diff(before, l.Tasks()); diff != "" {
		t.Errorf("toggle back mismatch (-want +got):\n%s", diff)
	}
	if l.SetChecked(99, true) {
		t.Error("SetChecked on unknown id reported true")
	}
}

func TestTaskListScenario(t *testing.T) {
	l := NewTaskList(GenerateTasks(3))

	l.SetChecked(1, true)
	want := []Task{
		{ID: 0, Label: "Task # 0"},
		{ID: 1, Label: "Task # 1", Checked: true},
		{ID: 2, Label: "Task # 2"},
	}
	if diff := cmp.Diff(want, l.Tasks()); diff != "" {
		t.Fatalf("after check (-want +got):\n%s", diff)
	}

	l.Remove(1)
	want = []Task{
		{ID: 0, Label: "Task # 0"},
		{ID: 2, Label: "Task # 2"},
	}
	if diff := cmp.Diff(want, l.Tasks()); diff != "" {
		t.Fatalf("after close (-want +got):\n%s", diff)
	}
}

func TestTaskListSlice(t *testing.T) {
	l := NewTaskList(GenerateTasks(5))
	tests := []struct {
		name     string
		from, to int
		want     []int
	}{
		{"middle", 1, 3, []int{1, 2}},
		{"clamped end", 3, 10, []int{3, 4}},
		{"clamped start", -2, 1, []int{0}},
		{"empty", 4, 4, []int{}},
		{"inverted", 4, 2, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(l.Slice(tt.from, tt.to))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Slice(%d, %d) (-want +got):\n%s", tt.from, tt.to, diff)
			}
		})
	}
}

func TestTaskListGetAndCheckedCount(t *testing.T) {
	l := NewTaskList(GenerateTasks(4))
	l.SetChecked(0, true)
	l.SetChecked(3, true)
	if got := l.CheckedCount(); got != 2 {
		t.Errorf("CheckedCount() = %d, want 2", got)
	}
	task, ok := l.Get(3)
	if !ok || !task.Checked || task.Label != "Task # 3" {
		t.Errorf("Get(3) = %+v, %v", task, ok)
	}
	if _, ok := l.Get(7); ok {
		t.Error("Get(7) found a task")
	}
}
