package pageflow

import (
	"errors"
	"fmt"
)

// Sentinel errors for common layout failure conditions.
var (
	ErrNegativeWidth = errors.New("pageflow: cell width cannot be negative")
	ErrNoTextStyle   = errors.New("pageflow: no default text style has been set")
	ErrPageLimit     = errors.New("pageflow: page limit reached")
	ErrInvalidParam  = errors.New("pageflow: invalid parameter")
)

// LayoutError represents an error that occurred during a specific layout
// operation. It wraps an underlying error and includes the operation name
// for context.
type LayoutError struct {
	Op  string // operation name, e.g. "Build", "Reserve"
	Err error  // underlying error
}

func (e *LayoutError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pageflow.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("pageflow.%s: unknown error", e.Op)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

// newLayoutError creates a new LayoutError wrapping the given error with
// operation context.
func newLayoutError(op string, err error) *LayoutError {
	return &LayoutError{Op: op, Err: err}
}
