package relation

import (
	"errors"
	"fmt"
)

// Sentinel errors for the relation package. Callers should use errors.Is to
// branch on these; they are never wrapped with an inline formatted string at
// definition site, only via relErrorf at the call site.
var (
	// ErrDimensionMismatch indicates Compose was called on relations whose
	// inner dimensions (R's column count vs S's row count) disagree.
	ErrDimensionMismatch = errors.New("relation: dimension mismatch")

	// ErrNotSquare indicates TransitiveClosure or a self-loop test was
	// invoked on a non-square relation.
	ErrNotSquare = errors.New("relation: relation is not square")

	// ErrIndexOutOfRange indicates Add was called with (i,j) outside the
	// declared [0,m)x[0,n) bounds (Add panics with it; Get returns
	// Undefined for out-of-range indices instead).
	ErrIndexOutOfRange = errors.New("relation: index out of range")
)

// relErrorf wraps a sentinel with call-site context while preserving it for
// errors.Is.
func relErrorf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
