package nnls

import (
	"errors"
	"fmt"
)

// Sentinel errors for the nnls package. Callers should match with
// errors.Is; wrapped forms still satisfy it.
var (
	// ErrDimensionMismatch is returned when A's row count does not match
	// len(v), or A has zero rows or columns.
	ErrDimensionMismatch = errors.New("nnls: dimension mismatch between A and v")

	// ErrCancelled is returned when the caller's context is done before or
	// during the solve; no partial commitment is made.
	ErrCancelled = errors.New("nnls: solve cancelled")
)

func errorf(op string, err error) error {
	return fmt.Errorf("nnls: %s: %w", op, err)
}
