// Package errs defines the solver's four-member error taxonomy
// (spec.md §7): Contradiction, NoSolutionFound, MultipleSolutionsFound and
// NoBifurcationsLeft. Each wraps an optional cause with
// github.com/pkg/errors so the chain stays readable while still
// satisfying errors.As for callers that only care about the kind.
package errs

import "github.com/pkg/errors"

// Contradiction means a constraint, or a cell's candidate set, can no
// longer be satisfied. Raised by cell narrowing and by the default
// enumeration pruner. At bifurcation depth > 0 it is caught by the
// controller and turned into an elimination in the parent board; at
// depth 0 it escapes to the caller of Solve.
type Contradiction struct {
	cause error
}

func NewContradiction(format string, args ...interface{}) *Contradiction {
	return &Contradiction{cause: errors.Errorf(format, args...)}
}

func WrapContradiction(cause error, format string, args ...interface{}) *Contradiction {
	return &Contradiction{cause: errors.Wrapf(cause, format, args...)}
}

func (e *Contradiction) Error() string { return "contradiction: " + e.cause.Error() }
func (e *Contradiction) Unwrap() error { return e.cause }

// NoSolutionFound means propagation and bifurcation were exhausted without
// finalising every cell.
type NoSolutionFound struct {
	cause error
}

func NewNoSolutionFound(format string, args ...interface{}) *NoSolutionFound {
	return &NoSolutionFound{cause: errors.Errorf(format, args...)}
}

func (e *NoSolutionFound) Error() string { return "no solution found: " + e.cause.Error() }
func (e *NoSolutionFound) Unwrap() error { return e.cause }

// MultipleSolutionsFound means bifurcation completed two boards with
// distinct fingerprints.
type MultipleSolutionsFound struct {
	cause          error
	FirstSolution  string
	SecondSolution string
}

func NewMultipleSolutionsFound(first, second string) *MultipleSolutionsFound {
	return &MultipleSolutionsFound{
		cause:          errors.Errorf("two distinct completions found"),
		FirstSolution:  first,
		SecondSolution: second,
	}
}

func (e *MultipleSolutionsFound) Error() string {
	return "multiple solutions found: " + e.cause.Error()
}
func (e *MultipleSolutionsFound) Unwrap() error { return e.cause }

// NoBifurcationsLeft means every (cell, value) target at the current
// bifurcation level has already been attempted.
type NoBifurcationsLeft struct {
	cause error
}

func NewNoBifurcationsLeft(format string, args ...interface{}) *NoBifurcationsLeft {
	return &NoBifurcationsLeft{cause: errors.Errorf(format, args...)}
}

func (e *NoBifurcationsLeft) Error() string { return "no bifurcations left: " + e.cause.Error() }
func (e *NoBifurcationsLeft) Unwrap() error { return e.cause }
