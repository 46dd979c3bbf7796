package shape

import (
	"errors"
	"fmt"
)

// Domain errors for shape construction.
var (
	// ErrInvalidShapeParameters indicates mismatched or empty mode arrays,
	// a non-positive period, or an empty shape list passed to Add.
	ErrInvalidShapeParameters = errors.New("shape: invalid shape parameters")

	// ErrDegenerateGeometry marks a mode whose symmetry is not positive. Its
	// native phase collapses to zero. This is advisory and never returned by
	// constructors; see Shape.Degenerate.
	ErrDegenerateGeometry = errors.New("shape: degenerate geometry (symmetry <= 0)")
)

// ParamError wraps an error with the offending parameter.
type ParamError struct {
	Field   string
	Index   int
	Reason  string
	Wrapped error
}

func (e *ParamError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %s: %s", e.Wrapped, e.Field, e.Reason)
	}
	return fmt.Sprintf("%v: %s[%d]: %s", e.Wrapped, e.Field, e.Index, e.Reason)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}

func invalid(field string, index int, format string, args ...any) error {
	return &ParamError{
		Field:   field,
		Index:   index,
		Reason:  fmt.Sprintf(format, args...),
		Wrapped: ErrInvalidShapeParameters,
	}
}
