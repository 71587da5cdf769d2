package wellness

import "testing"

func TestCounterBounded(t *testing.T) {
	c := NewCounter(DefaultCounterMax)
	for k := 1; k <= 25; k++ {
		accepted := c.Increment()
		want := k
		if want > DefaultCounterMax {
			want = DefaultCounterMax
		}
		if c.Value() != want {
			t.Fatalf("after %d increments: got %d, want %d", k, c.Value(), want)
		}
		if accepted != (k <= DefaultCounterMax) {
			t.Errorf("increment %d: accepted = %v", k, accepted)
		}
		if c.CanIncrement() != (c.Value() < DefaultCounterMax) {
			t.Errorf("increment %d: CanIncrement = %v with value %d", k, c.CanIncrement(), c.Value())
		}
	}
}

func TestNewCounterRaisesBound(t *testing.T) {
	c := NewCounter(0)
	if c.Max() != 1 {
		t.Fatalf("Max() = %d, want 1", c.Max())
	}
	if !c.Increment() {
		t.Fatal("first increment rejected")
	}
	if c.Increment() {
		t.Fatal("increment past bound accepted")
	}
}

func TestCounterSetClamps(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"negative", -4, 0},
		{"zero", 0, 0},
		{"within", 7, 7},
		{"at max", 10, 10},
		{"above max", 42, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCounter(10)
			c.Set(tt.in)
			if c.Value() != tt.want {
				t.Errorf("Set(%d) -> %d, want %d", tt.in, c.Value(), tt.want)
			}
		})
	}
}
