package catalog

import (
	"fmt"

	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// Error codes for fixture problems.
const (
	ErrCodeRead        = "E201" // File could not be read
	ErrCodeFormat      = "E202" // Unknown file extension
	ErrCodeParse       = "E203" // Malformed YAML or CUE
	ErrCodeSchema      = "E204" // Fixture violates the inventory schema
	ErrCodeEmpty       = "E205" // Fixture has no items
	ErrCodeSchemaBuild = "E206" // Embedded schema failed to compile
)

// FixtureError describes a fixture that could not be loaded.
type FixtureError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *FixtureError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// formatCUEError keeps the first CUE error and its position.
func formatCUEError(code string, err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &FixtureError{Code: code, Message: err.Error()}
	}

	first := errs[0]
	fe := &FixtureError{Code: code, Message: first.Error()}
	if positions := errors.Positions(first); len(positions) > 0 {
		fe.Pos = positions[0]
	}
	return fe
}
