package element

import (
	"errors"
	"fmt"
)

// Sentinel errors for the element package. Callers should match with
// errors.Is; wrapped forms still satisfy it.
var (
	// ErrMalformedFormula is returned when trailing input in a formula
	// string cannot be consumed by the tokenizer.
	ErrMalformedFormula = errors.New("element: malformed formula")

	// ErrUnknownElement is returned when a formula token names a symbol
	// absent from the supplied Table.
	ErrUnknownElement = errors.New("element: unknown element symbol")

	// ErrEmptyAbundance is returned when a Table entry has a zero-length
	// abundance vector; length must be >= 1.
	ErrEmptyAbundance = errors.New("element: abundance vector must be non-empty")

	// ErrNegativeAbundance is returned when an abundance entry is < 0.
	ErrNegativeAbundance = errors.New("element: abundance entries must be non-negative")

	// ErrAbundanceSumInvalid is returned when an abundance vector does not
	// sum to 1 within the table's epsilon tolerance.
	ErrAbundanceSumInvalid = errors.New("element: abundance vector does not sum to 1")
)

func errorf(op string, err error) error {
	return fmt.Errorf("element: %s: %w", op, err)
}
