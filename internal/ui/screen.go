package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/wellness-go/internal/config"
	"github.com/nibzard/wellness-go/internal/logging"
	"github.com/nibzard/wellness-go/internal/savedstate"
	"github.com/nibzard/wellness-go/internal/wellness"
)

// defaultVisibleRows is used before the terminal reports its size.
const defaultVisibleRows = 10

// chromeLines is the number of screen lines not used by task rows:
// title, counter message and button, section header, status and help.
const chromeLines = 9

const pulseInterval = 120 * time.Millisecond

// Options configures a Screen.
type Options struct {
	TaskCount      int
	CounterMax     int
	CounterMode    string // config.CounterModeSelf or config.CounterModeHoisted
	RestoreCounter bool
	VisibleRows    int // 0 fits the terminal
	Logger         *log.Logger
}

// OptionsFromConfig maps configuration onto screen options.
func OptionsFromConfig(cfg *config.Config, logger *log.Logger) Options {
	return Options{
		TaskCount:      cfg.TaskCount,
		CounterMax:     cfg.CounterMax,
		CounterMode:    cfg.CounterMode,
		RestoreCounter: cfg.RestoreCounter,
		VisibleRows:    cfg.VisibleRows,
		Logger:         logger,
	}
}

type focus int

const (
	focusCounter focus = iota
	focusTasks
)

type pulseMsg struct{}

// Screen composes the counter and the task list. It owns the task list and
// the counter holder; widgets only receive values and callbacks.
type Screen struct {
	opts    Options
	logger  *log.Logger
	counter Counter
	tasks   *wellness.TaskList
	list    *TaskListView

	keys       keyMap
	help       help.Model
	focus      focus
	pulsing    bool
	width      int
	height     int
	status     string
	session    int
	redisplays int
	restored   bool
}

// NewScreen builds a screen session. The task list is generated here exactly
// once; saved, when non-nil, restores the values a previous session saved.
func NewScreen(opts Options, saved *savedstate.Bundle) *Screen {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Screen{
		opts:   opts,
		logger: logger,
		tasks:  wellness.NewTaskList(wellness.GenerateTasks(opts.TaskCount)),
		keys:   defaultKeyMap(),
		help:   help.New(),
		focus:  focusCounter,
	}
	s.counter = newCounter(opts)
	s.list = NewTaskListView(s.tasks, s.onCheckedChanged, s.onCloseRequested, s.listHeight())

	if saved != nil {
		s.counter.Restore(saved)
		s.list.Restore(saved)
		s.restored = true
		s.status = "Restored saved state"
	}
	logger.Info("session started",
		"tasks", s.tasks.Len(),
		"counter_mode", counterMode(opts),
		"count", s.counter.Control().Frame.Count,
		"restored", s.restored,
	)
	return s
}

func newCounter(opts Options) Counter {
	limit := opts.CounterMax
	if limit <= 0 {
		limit = wellness.DefaultCounterMax
	}
	if counterMode(opts) == config.CounterModeSelf {
		return NewWaterCounter(limit, opts.RestoreCounter)
	}
	return NewStatefulCounter(limit, opts.RestoreCounter)
}

func counterMode(opts Options) string {
	if opts.CounterMode == config.CounterModeSelf {
		return config.CounterModeSelf
	}
	return config.CounterModeHoisted
}

func (s *Screen) onCheckedChanged(task wellness.Task, checked bool) {
	if !s.tasks.SetChecked(task.ID, checked) {
		s.logger.Warn("check on unknown task", "id", task.ID)
		return
	}
	s.logger.Info("task checked", "id", task.ID, "checked", checked)
}

func (s *Screen) onCloseRequested(task wellness.Task) {
	if !s.tasks.Remove(task.ID) {
		s.logger.Warn("close on unknown task", "id", task.ID)
		return
	}
	s.status = fmt.Sprintf("Closed %s", task.Label)
	s.logger.Info("task closed", "id", task.ID, "remaining", s.tasks.Len())
}

// Init implements tea.Model.
func (s *Screen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s *Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		s.help.Width = msg.Width
		s.list.SetHeight(s.listHeight())
		return s, nil

	case pulseMsg:
		if s.list.Tick() {
			return s, pulseCmd()
		}
		s.pulsing = false
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Quit):
		return s, tea.Quit
	case key.Matches(msg, s.keys.Help):
		s.help.ShowAll = !s.help.ShowAll
		return s, nil
	case key.Matches(msg, s.keys.Recreate):
		return s.Recreate(), nil
	case key.Matches(msg, s.keys.Focus):
		if s.focus == focusCounter {
			s.focus = focusTasks
		} else {
			s.focus = focusCounter
		}
		return s, nil
	case key.Matches(msg, s.keys.Increment):
		s.PressCounter()
		return s, nil
	case key.Matches(msg, s.keys.Activate):
		if s.focus == focusCounter {
			s.PressCounter()
			return s, nil
		}
		return s, s.toggleSelected()
	}

	if s.focus != focusTasks {
		if key.Matches(msg, s.keys.Down) {
			s.focus = focusTasks
		}
		return s, nil
	}

	switch {
	case key.Matches(msg, s.keys.Up):
		if s.list.CursorID() == s.firstTaskID() {
			s.focus = focusCounter
			return s, nil
		}
		s.list.MoveCursor(-1)
	case key.Matches(msg, s.keys.Down):
		s.list.MoveCursor(1)
	case key.Matches(msg, s.keys.PageUp):
		s.list.PageUp()
	case key.Matches(msg, s.keys.PageDown):
		s.list.PageDown()
	case key.Matches(msg, s.keys.Top):
		s.list.Top()
	case key.Matches(msg, s.keys.Bottom):
		s.list.Bottom()
	case key.Matches(msg, s.keys.Toggle):
		return s, s.toggleSelected()
	case key.Matches(msg, s.keys.Close):
		s.list.CloseSelected()
	}
	return s, nil
}

func (s *Screen) firstTaskID() int {
	if s.tasks.Len() == 0 {
		return noID
	}
	return s.tasks.At(0).ID
}

// PressCounter presses the counter's increment control. It reports whether
// the press was accepted; a disabled control ignores it.
func (s *Screen) PressCounter() bool {
	if !s.counter.Control().Press() {
		s.status = "That's enough water for now"
		s.logger.Debug("increment rejected", "count", s.counter.Control().Frame.Count)
		return false
	}
	frame := s.counter.Control().Frame
	s.status = ""
	s.logger.Info("glass added", "count", frame.Count)
	return true
}

func (s *Screen) toggleSelected() tea.Cmd {
	if !s.list.ToggleSelected() || s.pulsing {
		return nil
	}
	s.pulsing = true
	return pulseCmd()
}

func pulseCmd() tea.Cmd {
	return tea.Tick(pulseInterval, func(time.Time) tea.Msg {
		return pulseMsg{}
	})
}

// Bundle snapshots the restorable state of the screen.
func (s *Screen) Bundle() *savedstate.Bundle {
	b := savedstate.NewBundle()
	s.counter.Save(b)
	s.list.Save(b)
	b.Stamp()
	return b
}

// Recreate simulates a session recreation: the restorable state is saved and
// a new screen is built from it. Everything not in the bundle, including
// removed and checked tasks, starts over.
func (s *Screen) Recreate() *Screen {
	next := NewScreen(s.opts, s.Bundle())
	next.session = s.session + 1
	next.width, next.height = s.width, s.height
	next.help.Width = s.help.Width
	next.list.SetHeight(next.listHeight())
	next.status = fmt.Sprintf("Session recreated (#%d)", next.session)
	s.logger.Info("session recreated", "session", next.session)
	return next
}

func (s *Screen) listHeight() int {
	if s.opts.VisibleRows > 0 {
		return s.opts.VisibleRows
	}
	if s.height <= 0 {
		return defaultVisibleRows
	}
	return max(s.height-chromeLines, 1)
}

// CounterFrame returns the counter as it would be drawn now.
func (s *Screen) CounterFrame() CounterFrame {
	return s.counter.Control().Frame
}

// Rows returns the visible task rows.
func (s *Screen) Rows() []RowFrame {
	return s.list.Rows()
}

// Tasks returns a snapshot of the owned task list.
func (s *Screen) Tasks() []wellness.Task {
	return s.tasks.Tasks()
}

// TaskList returns the view that renders the task list.
func (s *Screen) TaskList() *TaskListView {
	return s.list
}

// Redisplays returns how many times View has run.
func (s *Screen) Redisplays() int {
	return s.redisplays
}

// Session returns the number of recreations that led to this screen.
func (s *Screen) Session() int {
	return s.session
}

// View implements tea.Model. It is a redisplay pass only: it reads state and
// never regenerates or mutates the task list.
func (s *Screen) View() string {
	s.redisplays++

	var b strings.Builder
	b.WriteString(titleStyle.Render("Wellness"))
	b.WriteString("\n\n")

	b.WriteString(renderCounter(s.CounterFrame(), s.focus == focusCounter))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Tasks (%d left, %d done)", s.tasks.Len(), s.tasks.CheckedCount())))
	b.WriteString("\n")
	if rows := s.Rows(); len(rows) > 0 {
		b.WriteString(renderRows(rows, s.focus == focusTasks))
	} else {
		b.WriteString(statusStyle.Render("  All tasks closed."))
	}
	b.WriteString("\n\n")

	if s.status != "" {
		b.WriteString(statusStyle.Render(s.status))
		b.WriteString("\n")
	}
	b.WriteString(s.help.View(s.keys))
	b.WriteString("\n")
	return b.String()
}
