package wellness

// TaskList is the ordered, mutable collection of tasks owned by the screen.
//
// The list is built once from the task source and afterwards only shrinks or
// has individual checked flags changed. It must not be rebuilt on redisplay.
type TaskList struct {
	tasks []Task
}

// NewTaskList builds a list from the given tasks in order.
// The slice is copied so the caller's slice is never aliased.
func NewTaskList(tasks []Task) *TaskList {
	owned := make([]Task, len(tasks))
	copy(owned, tasks)
	return &TaskList{tasks: owned}
}

// Len returns the number of tasks in the list.
func (l *TaskList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.tasks)
}

// At returns the task at position i. It panics if i is out of range,
// the same as indexing a slice.
func (l *TaskList) At(i int) Task {
	return l.tasks[i]
}

// Tasks returns a snapshot copy of the list.
func (l *TaskList) Tasks() []Task {
	if l == nil {
		return nil
	}
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Slice returns a copy of the tasks in positions [from, to), clamped to the
// list bounds. Renderers use it to materialize only the visible window.
func (l *TaskList) Slice(from, to int) []Task {
	n := l.Len()
	if from < 0 {
		from = 0
	}
	if to > n {
		to = n
	}
	if from >= to {
		return nil
	}
	out := make([]Task, to-from)
	copy(out, l.tasks[from:to])
	return out
}

// IndexOf returns the position of the task with the given id, or -1.
func (l *TaskList) IndexOf(id int) int {
	if l == nil {
		return -1
	}
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns the task with the given id.
func (l *TaskList) Get(id int) (Task, bool) {
	i := l.IndexOf(id)
	if i < 0 {
		return Task{}, false
	}
	return l.tasks[i], true
}

// Remove deletes the task with the given id, preserving the order of the
// remaining tasks. It reports whether a task was removed.
func (l *TaskList) Remove(id int) bool {
	i := l.IndexOf(id)
	if i < 0 {
		return false
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return true
}

// SetChecked sets the checked flag on the task with the given id.
// It reports whether a task with that id exists.
func (l *TaskList) SetChecked(id int, checked bool) bool {
	i := l.IndexOf(id)
	if i < 0 {
		return false
	}
	l.tasks[i].Checked = checked
	return true
}

// CheckedCount returns how many tasks are checked.
func (l *TaskList) CheckedCount() int {
	if l == nil {
		return 0
	}
	n := 0
	for _, t := range l.tasks {
		if t.Checked {
			n++
		}
	}
	return n
}
