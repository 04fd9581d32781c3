package correction

import (
	"math"

	"github.com/isocorr-go/isocorr/nnls"
)

// DefaultPuritySumEpsilon is the tolerance for "purity sums to 1", used
// instead of requiring exact floating-point equality.
const DefaultPuritySumEpsilon = 1e-9

// DefaultInvariantEpsilon bounds the post-normalization sum check: drifting
// from 1 by more than this is ErrInternalInvariant, not a reported input
// error.
const DefaultInvariantEpsilon = 1e-6

// Option configures Correct. Constructors panic on nonsensical
// construction-time values, matching element.Option/nnls.Option.
type Option func(*correctOptions)

type correctOptions struct {
	puritySumEpsilon float64
	invariantEpsilon float64
	wantMeanEnrich   bool
	solverOpts       []nnls.Option
}

// WithMeanEnrichment requests that Correct compute ME in its Result.
func WithMeanEnrichment() Option {
	return func(o *correctOptions) { o.wantMeanEnrich = true }
}

// WithPuritySumEpsilon overrides the tolerance used to validate that the
// purity vector sums to 1. eps must be finite and non-negative.
func WithPuritySumEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic("correction: WithPuritySumEpsilon: eps must be finite and non-negative")
	}

	return func(o *correctOptions) { o.puritySumEpsilon = eps }
}

// WithInvariantEpsilon overrides the tolerance used to detect a
// post-normalization internal invariant violation. eps must be finite and
// non-negative.
func WithInvariantEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic("correction: WithInvariantEpsilon: eps must be finite and non-negative")
	}

	return func(o *correctOptions) { o.invariantEpsilon = eps }
}

// WithSolverOptions forwards options to the underlying nnls.Solve call,
// allowing callers to pick a backend (nnls.WithSolver) or tune its
// tolerances without this package re-exposing every nnls.Option by hand.
func WithSolverOptions(opts ...nnls.Option) Option {
	return func(o *correctOptions) { o.solverOpts = opts }
}

func gatherOptions(opts ...Option) correctOptions {
	o := correctOptions{
		puritySumEpsilon: DefaultPuritySumEpsilon,
		invariantEpsilon: DefaultInvariantEpsilon,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}
