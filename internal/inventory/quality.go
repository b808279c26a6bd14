package inventory

import "fmt"

// Quality limits.
const (
	MinQuality       = 0
	MaxQuality       = 50
	LegendaryQuality = 80
)

// Quality is a sealed interface over the two quality spaces.
// Only Bounded and Legendary implement it.
type Quality interface {
	Value() int
	quality() // Sealed
}

// RangeError is returned when a bounded quality is built outside [Min, Max].
// Seeing one at runtime means the input was already invalid or a rule is broken.
type RangeError struct {
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("quality %d out of range [%d, %d]", e.Value, e.Min, e.Max)
}

// Bounded is a quality score in [MinQuality, MaxQuality].
// The zero value is a valid quality of 0.
type Bounded struct {
	value int
}

func (Bounded) quality() {}

// NewBounded validates v and returns it as a Bounded quality.
func NewBounded(v int) (Bounded, error) {
	if v < MinQuality || v > MaxQuality {
		return Bounded{}, &RangeError{Value: v, Min: MinQuality, Max: MaxQuality}
	}
	return Bounded{value: v}, nil
}

// MustBounded is like NewBounded but panics with the *RangeError.
func MustBounded(v int) Bounded {
	q, err := NewBounded(v)
	if err != nil {
		panic(err)
	}
	return q
}

// Value returns the score.
func (q Bounded) Value() int {
	return q.value
}

// WithChange applies c and clamps the result into [MinQuality, MaxQuality].
func (q Bounded) WithChange(c Change) Bounded {
	if c.reset {
		return Bounded{}
	}
	return MustBounded(clamp(q.value-c.delta, MinQuality, MaxQuality))
}

// Legendary is the fixed quality of legendary items.
type Legendary struct{}

func (Legendary) quality() {}

// Value always returns LegendaryQuality.
func (Legendary) Value() int {
	return LegendaryQuality
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
