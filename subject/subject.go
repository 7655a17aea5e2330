// Package subject contains the small self-contained functions that the test
// suite exercises. Every function is deterministic and side-effect-free; any
// narration of what they computed is done by the callers, not here.
package subject

import "errors"

// ErrNegativeInput is returned by the computational functions (Factorial,
// Fibonacci) when the argument is outside their mathematical domain.
var ErrNegativeInput = errors.New("negative input is not allowed")

// Status is the two-valued outcome of a validation-style function.
type Status int

const (
	// Success marks a passing or valid scenario.
	Success Status = iota
	// Failure marks a failing or invalid scenario.
	Failure
)

func (s Status) String() string {
	if s == Success {
		return "success"
	}
	return "failure"
}
