package inventory

import "fmt"

// Change describes one day's effect on a bounded quality.
//
// Increases and decreases share a single signed delta: delta is the amount
// subtracted from the quality, so Decrease(n) stores n and Increase(n) stores -n.
// A reset ignores the delta and forces the quality to zero.
type Change struct {
	delta int
	reset bool
}

// Decrease lowers quality by n.
func Decrease(n int) Change {
	return Change{delta: n}
}

// Increase raises quality by n.
func Increase(n int) Change {
	return Change{delta: -n}
}

// ResetToZero drops quality to 0 regardless of its current value.
func ResetToZero() Change {
	return Change{reset: true}
}

// Twice returns the change doubled. A reset stays a reset.
func (c Change) Twice() Change {
	if c.reset {
		return c
	}
	return Change{delta: c.delta * 2}
}

// Amount returns the signed amount added to quality (negative for decreases).
// It is zero for a reset.
func (c Change) Amount() int {
	return -c.delta
}

// Resets reports whether c is a reset to zero.
func (c Change) Resets() bool {
	return c.reset
}

func (c Change) String() string {
	switch {
	case c.reset:
		return "reset"
	case c.delta < 0:
		return fmt.Sprintf("increase(%d)", -c.delta)
	default:
		return fmt.Sprintf("decrease(%d)", c.delta)
	}
}
