package wellness

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateTasks(t *testing.T) {
	t.Run("sequential ids and labels", func(t *testing.T) {
		got := GenerateTasks(3)
		want := []Task{
			{ID: 0, Label: "Task # 0"},
			{ID: 1, Label: "Task # 1"},
			{ID: 2, Label: "Task # 2"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("GenerateTasks(3) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("zero and negative counts are empty", func(t *testing.T) {
		for _, n := range []int{0, -1, -30} {
			got := GenerateTasks(n)
			if got == nil || len(got) != 0 {
				t.Errorf("GenerateTasks(%d) = %v, want empty non-nil slice", n, got)
			}
		}
	})

	t.Run("calls return equal but distinct slices", func(t *testing.T) {
		a := GenerateTasks(DefaultTaskCount)
		b := GenerateTasks(DefaultTaskCount)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("expected value-equal sequences (-a +b):\n%s", diff)
		}
		a[0].Checked = true
		if b[0].Checked {
			t.Error("mutating one generated slice affected another")
		}
	})

	t.Run("ids are unique", func(t *testing.T) {
		seen := make(map[int]bool)
		for _, task := range GenerateTasks(100) {
			if seen[task.ID] {
				t.Fatalf("duplicate id %d", task.ID)
			}
			seen[task.ID] = true
		}
	})
}
