package shop

import (
	"errors"
	"fmt"

	"github.com/roach88/gildedrose/internal/inventory"
)

// ConversionError reports a record that could not be mapped to a typed item.
type ConversionError struct {
	// Index is the position of the record in the batch.
	Index int

	// Name is the record's name.
	Name string

	// Err is the underlying error, usually *inventory.RangeError.
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("item %d (%q): %v", e.Index, e.Name, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// IsRangeError returns true if err carries an out-of-range quality.
// Uses errors.As to handle wrapped errors.
func IsRangeError(err error) bool {
	var re *inventory.RangeError
	return errors.As(err, &re)
}
