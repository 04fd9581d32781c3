package metabolitedb

import (
	"errors"
	"fmt"
)

// Sentinel errors for the metabolitedb package. Callers should match with
// errors.Is; wrapped forms still satisfy it.
var (
	// ErrMalformedLine is returned when a non-blank line has fewer than the
	// two mandatory fields (name, formula).
	ErrMalformedLine = errors.New("metabolitedb: malformed line")

	// ErrInvalidCharge is returned when the optional charge field cannot be
	// parsed as an integer.
	ErrInvalidCharge = errors.New("metabolitedb: invalid charge value")
)

func errorf(op string, err error) error {
	return fmt.Errorf("metabolitedb: %s: %w", op, err)
}
