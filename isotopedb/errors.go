package isotopedb

import (
	"errors"
	"fmt"
)

// Sentinel errors for the isotopedb package. Callers should match with
// errors.Is; wrapped forms still satisfy it.
var (
	// ErrMalformedLine is returned when a non-blank line has fewer than two
	// tab-separated fields (a symbol plus at least one abundance entry).
	ErrMalformedLine = errors.New("isotopedb: malformed line")

	// ErrInvalidAbundance is returned when an abundance field cannot be
	// parsed as a floating-point number.
	ErrInvalidAbundance = errors.New("isotopedb: invalid abundance value")

	// ErrDuplicateSymbol is returned when the same element symbol appears
	// on more than one line of the same table file.
	ErrDuplicateSymbol = errors.New("isotopedb: duplicate element symbol")
)

func errorf(op string, err error) error {
	return fmt.Errorf("isotopedb: %s: %w", op, err)
}
