package inventory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBounded_AcceptsRange(t *testing.T) {
	for _, v := range []int{0, 1, 25, 49, 50} {
		q, err := NewBounded(v)
		require.NoError(t, err)
		assert.Equal(t, v, q.Value())
	}
}

func TestNewBounded_RejectsOutOfRange(t *testing.T) {
	for _, v := range []int{-1, 51, 80, -100} {
		_, err := NewBounded(v)
		require.Error(t, err, "value %d", v)

		var re *RangeError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, v, re.Value)
		assert.Equal(t, MinQuality, re.Min)
		assert.Equal(t, MaxQuality, re.Max)
	}
}

func TestMustBounded_Panics(t *testing.T) {
	assert.Panics(t, func() { MustBounded(51) })
	assert.NotPanics(t, func() { MustBounded(50) })
}

func TestRangeError_Message(t *testing.T) {
	err := &RangeError{Value: 51, Min: 0, Max: 50}
	assert.Equal(t, "quality 51 out of range [0, 50]", err.Error())
}

func TestBounded_WithChange(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		change Change
		want   int
	}{
		{"decrease", 20, Decrease(1), 19},
		{"decrease doubled", 20, Decrease(1).Twice(), 18},
		{"decrease clamps at zero", 1, Decrease(2), 0},
		{"decrease from zero", 0, Decrease(1), 0},
		{"increase", 10, Increase(3), 13},
		{"increase clamps at max", 49, Increase(3), 50},
		{"increase at max", 50, Increase(1), 50},
		{"reset", 49, ResetToZero(), 0},
		{"reset from zero", 0, ResetToZero(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustBounded(tt.start).WithChange(tt.change)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestBounded_WithChangeNeverLeavesRange(t *testing.T) {
	changes := []Change{
		Decrease(1), Decrease(1).Twice(), Decrease(100),
		Increase(1), Increase(3).Twice(), Increase(100),
		ResetToZero(),
	}

	for v := MinQuality; v <= MaxQuality; v++ {
		for _, c := range changes {
			got := MustBounded(v).WithChange(c).Value()
			assert.GreaterOrEqual(t, got, MinQuality, "%d %s", v, c)
			assert.LessOrEqual(t, got, MaxQuality, "%d %s", v, c)
		}
	}
}

func TestBounded_ZeroValue(t *testing.T) {
	var q Bounded
	assert.Equal(t, 0, q.Value())
}

func TestLegendary_Value(t *testing.T) {
	var q Quality = Legendary{}
	assert.Equal(t, 80, q.Value())
}
