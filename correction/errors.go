package correction

import (
	"errors"
	"fmt"
)

// Sentinel errors for the correction package. Callers should match with
// errors.Is; wrapped forms still satisfy it. Names mirror the caller-visible
// error kinds from the correction contract; none imply a particular
// source-language type.
var (
	// ErrTracerAbsent is returned when the tracer element does not appear
	// in the metabolite formula with a count >= 1.
	ErrTracerAbsent = errors.New("correction: tracer element absent from metabolite formula")

	// ErrMeasurementTooShort is returned when M < n*Delta + 1, where Delta
	// is the tracer's maximum mass shift per atom.
	ErrMeasurementTooShort = errors.New("correction: measurement vector too short for tracer atom count")

	// ErrFragmentTooSmall is returned when M exceeds what the declared
	// formula can generate: M > len(naturalAbundanceMDV) + n*Delta.
	ErrFragmentTooSmall = errors.New("correction: measurement window exceeds what the formula can generate")

	// ErrPurityShapeMismatch is returned when the purity vector's length
	// does not equal the tracer's isotope-vector length k_tracer.
	ErrPurityShapeMismatch = errors.New("correction: purity vector length does not match tracer isotope count")

	// ErrPuritySumInvalid is returned when the purity vector does not sum
	// to 1 within tolerance.
	ErrPuritySumInvalid = errors.New("correction: purity vector does not sum to 1")

	// ErrIsotopeTableInvalid is returned when the tracer element has no
	// entry in the isotope table or its abundance vector has fewer than 2
	// entries (k_tracer >= 2 required). A formula element missing from the
	// table surfaces as element.ErrUnknownElement instead.
	ErrIsotopeTableInvalid = errors.New("correction: isotope table missing or malformed entry")

	// ErrSolverDidNotConverge is returned when the NNLS solver exhausts
	// its iteration cap; the best-effort result is still usable.
	ErrSolverDidNotConverge = errors.New("correction: solver did not converge within the iteration cap")

	// ErrCancelled is returned when the caller's context is cancelled
	// before or during the solve.
	ErrCancelled = errors.New("correction: correction cancelled")

	// ErrInternalInvariant is returned when a postcondition the package
	// itself is responsible for maintaining is violated (e.g. a
	// normalized distribution whose sum drifts from 1 by more than 1e-6).
	// Seeing this indicates a defect in this package, not bad input.
	ErrInternalInvariant = errors.New("correction: internal invariant violated")
)

func errorf(op string, err error) error {
	return fmt.Errorf("correction: %s: %w", op, err)
}
