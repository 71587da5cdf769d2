package wellness

import "fmt"

// DefaultTaskCount is the number of tasks generated for a new session.
const DefaultTaskCount = 30

// Task represents a single wellness checklist entry.
type Task struct {
	ID      int    `json:"id"`
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// GenerateTasks returns n tasks with ids 0..n-1 and labels "Task # {id}".
// Every call allocates a new slice, so callers may mutate the result freely.
func GenerateTasks(n int) []Task {
	if n <= 0 {
		return []Task{}
	}
	tasks := make([]Task, n)
	for i := range tasks {
		tasks[i] = Task{ID: i, Label: TaskLabel(i)}
	}
	return tasks
}

// TaskLabel returns the display label for the task with the given id.
func TaskLabel(id int) string {
	return fmt.Sprintf("Task # %d", id)
}
