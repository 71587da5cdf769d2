package ui

import (
	"fmt"
	"strings"

	"github.com/nibzard/wellness-go/internal/savedstate"
	"github.com/nibzard/wellness-go/internal/wellness"
)

// counterStateKey is the bundle key of the restorable count.
const counterStateKey = "water_counter.count"

const incrementLabel = "Add one"

// CounterFrame describes one rendering of a counter.
type CounterFrame struct {
	ShowMessage bool
	Message     string
	Count       int
	Label       string
	Enabled     bool // false once the count reaches its bound
}

func glassesMessage(count int) string {
	return fmt.Sprintf("You've had %d glasses.", count)
}

// CounterControl is a rendered counter plus its increment action.
type CounterControl struct {
	Frame       CounterFrame
	onIncrement func()
}

// Press invokes the increment callback. A disabled control is inert and
// Press reports false without calling anything.
func (c CounterControl) Press() bool {
	if !c.Frame.Enabled || c.onIncrement == nil {
		return false
	}
	c.onIncrement()
	return true
}

// StatelessCounter renders a counter whose count is owned by the caller.
// The control is disabled when count has reached limit.
func StatelessCounter(count, limit int, onIncrement func()) CounterControl {
	return CounterControl{
		Frame: CounterFrame{
			ShowMessage: count > 0,
			Message:     glassesMessageIf(count),
			Count:       count,
			Label:       incrementLabel,
			Enabled:     count < limit,
		},
		onIncrement: onIncrement,
	}
}

func glassesMessageIf(count int) string {
	if count <= 0 {
		return ""
	}
	return glassesMessage(count)
}

// Counter is a counter widget hosted by the screen.
type Counter interface {
	// Control renders the counter for the current redisplay.
	Control() CounterControl
	// Save writes restorable state into b.
	Save(b *savedstate.Bundle)
	// Restore reads state previously written by Save.
	Restore(b *savedstate.Bundle)
}

// WaterCounter is the self-owned counter: the count lives inside the widget.
type WaterCounter struct {
	count      wellness.Counter
	restorable bool
}

// NewWaterCounter returns a counter at zero. When restorable is false the
// count is session-scoped and Save/Restore do nothing.
func NewWaterCounter(limit int, restorable bool) *WaterCounter {
	return &WaterCounter{count: wellness.NewCounter(limit), restorable: restorable}
}

// Control renders the counter.
func (w *WaterCounter) Control() CounterControl {
	frame := CounterFrame{
		Count:   w.count.Value(),
		Label:   incrementLabel,
		Enabled: w.count.CanIncrement(),
	}
	if w.count.Value() > 0 {
		frame.ShowMessage = true
		frame.Message = glassesMessage(w.count.Value())
	}
	return CounterControl{Frame: frame, onIncrement: w.increment}
}

func (w *WaterCounter) increment() {
	w.count.Increment()
}

// Save implements Counter.
func (w *WaterCounter) Save(b *savedstate.Bundle) {
	saveCount(b, w.restorable, w.count)
}

// Restore implements Counter.
func (w *WaterCounter) Restore(b *savedstate.Bundle) {
	restoreCount(b, w.restorable, &w.count)
}

// StatefulCounter owns the count and renders it through StatelessCounter.
type StatefulCounter struct {
	count      wellness.Counter
	restorable bool
}

// NewStatefulCounter returns a hoisting counter at zero.
func NewStatefulCounter(limit int, restorable bool) *StatefulCounter {
	return &StatefulCounter{count: wellness.NewCounter(limit), restorable: restorable}
}

// Control renders the counter.
func (s *StatefulCounter) Control() CounterControl {
	return StatelessCounter(s.count.Value(), s.count.Max(), func() { s.count.Increment() })
}

// Save implements Counter.
func (s *StatefulCounter) Save(b *savedstate.Bundle) {
	saveCount(b, s.restorable, s.count)
}

// Restore implements Counter.
func (s *StatefulCounter) Restore(b *savedstate.Bundle) {
	restoreCount(b, s.restorable, &s.count)
}

func saveCount(b *savedstate.Bundle, restorable bool, c wellness.Counter) {
	if !restorable || b == nil {
		return
	}
	b.PutInt(counterStateKey, c.Value())
}

func restoreCount(b *savedstate.Bundle, restorable bool, c *wellness.Counter) {
	if !restorable {
		return
	}
	if v, ok := b.Int(counterStateKey); ok {
		c.Set(v)
	}
}

// renderCounter draws a counter frame. The message line is omitted until the
// first glass is counted.
func renderCounter(frame CounterFrame, focused bool) string {
	var b strings.Builder
	if frame.ShowMessage {
		b.WriteString(messageStyle.Render(frame.Message))
		b.WriteString("\n")
	}
	style := buttonStyle
	switch {
	case !frame.Enabled:
		style = buttonDisabledStyle
	case focused:
		style = buttonFocusedStyle
	}
	b.WriteString(style.Render(frame.Label))
	return b.String()
}
