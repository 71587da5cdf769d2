package wellness

// DefaultCounterMax is the upper bound of the water counter.
const DefaultCounterMax = 10

// Counter is a bounded, non-negative integer counter.
//
// The zero value is not usable because its bound is zero; use NewCounter.
type Counter struct {
	count int
	max   int
}

// NewCounter returns a counter at zero with the given upper bound.
// A bound below one is raised to one.
func NewCounter(limit int) Counter {
	if limit < 1 {
		limit = 1
	}
	return Counter{max: limit}
}

// Value returns the current count.
func (c Counter) Value() int { return c.count }

// Max returns the upper bound.
func (c Counter) Max() int { return c.max }

// CanIncrement reports whether another increment would be accepted.
func (c Counter) CanIncrement() bool { return c.count < c.max }

// Increment adds one if the bound allows it and reports whether it did.
func (c *Counter) Increment() bool {
	if !c.CanIncrement() {
		return false
	}
	c.count++
	return true
}

// Set assigns a count, clamped to [0, Max].
func (c *Counter) Set(v int) {
	c.count = ClampCount(v, c.max)
}

// ClampCount clamps v to the range [0, limit].
func ClampCount(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
