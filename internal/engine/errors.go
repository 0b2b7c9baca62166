package engine

import (
	"errors"
	"fmt"
)

// Errors returned by engine constructors and evaluators.
var (
	// ErrOutOfDomain indicates a query point whose bracketing samples
	// fall outside the table.
	ErrOutOfDomain = errors.New("x is outside of function domain")

	// ErrTableTooShort indicates a table with fewer samples than the
	// interpolation window needs.
	ErrTableTooShort = errors.New("sample table too short")

	// ErrInvalidStep indicates a non-positive or non-finite sample spacing.
	ErrInvalidStep = errors.New("sample step must be positive and finite")
)

// OutOfDomainError reports a rejected query point. It unwraps to
// ErrOutOfDomain.
type OutOfDomainError struct {
	// X is the offending query point.
	X float64

	// Lo and Hi bound the accepted half-open interval [Lo, Hi).
	Lo, Hi float64

	// Method names the interpolator that rejected X.
	Method Method
}

func (e *OutOfDomainError) Error() string {
	return fmt.Sprintf("%s: %v: x = %g not in [%g, %g)", e.Method, ErrOutOfDomain, e.X, e.Lo, e.Hi)
}

// Unwrap allows errors.Is(err, ErrOutOfDomain).
func (e *OutOfDomainError) Unwrap() error {
	return ErrOutOfDomain
}
