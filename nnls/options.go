package nnls

import "math"

// SolverKind selects the backend Solve uses.
type SolverKind int

const (
	// SolverActiveSet runs the Lawson-Hanson active-set algorithm (default).
	SolverActiveSet SolverKind = iota
	// SolverLBFGS runs gonum's LBFGS with clamp-to-nonnegative projection.
	SolverLBFGS
)

// Default tuning constants: convergence tolerance is a
// project-gradient norm <= 1e-10 or a relative objective change <= 1e-12,
// whichever triggers first; the iteration cap must be >= 200.
const (
	DefaultMaxIterations     = 200
	DefaultGradientTolerance = 1e-10
	DefaultObjectiveTolerance = 1e-12
	// DefaultRidge is a small Tikhonov term added to the passive-set normal
	// equations (A_p^T A_p + ridge*I) to guard against a singular system
	// when A is ill-conditioned.
	DefaultRidge = 1e-12
)

// Option configures Solve. Constructors panic on nonsensical
// construction-time values, matching element.Option's functional-option
// convention.
type Option func(*solverOptions)

type solverOptions struct {
	kind          SolverKind
	maxIterations int
	gradientTol   float64
	objectiveTol  float64
	ridge         float64
}

// WithSolver selects the solver backend.
func WithSolver(kind SolverKind) Option {
	return func(o *solverOptions) { o.kind = kind }
}

// WithMaxIterations overrides the iteration cap. n must be >= 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("nnls: WithMaxIterations: n must be >= 1")
	}

	return func(o *solverOptions) { o.maxIterations = n }
}

// WithGradientTolerance overrides the projected-gradient convergence
// tolerance. eps must be finite and non-negative.
func WithGradientTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic("nnls: WithGradientTolerance: eps must be finite and non-negative")
	}

	return func(o *solverOptions) { o.gradientTol = eps }
}

// WithObjectiveTolerance overrides the relative-objective-change
// convergence tolerance. eps must be finite and non-negative.
func WithObjectiveTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic("nnls: WithObjectiveTolerance: eps must be finite and non-negative")
	}

	return func(o *solverOptions) { o.objectiveTol = eps }
}

// WithRidge overrides the Tikhonov regularization term used by the
// active-set backend's passive-set solve. eps must be finite and
// non-negative.
func WithRidge(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic("nnls: WithRidge: eps must be finite and non-negative")
	}

	return func(o *solverOptions) { o.ridge = eps }
}

func gatherOptions(opts ...Option) solverOptions {
	o := solverOptions{
		kind:          SolverActiveSet,
		maxIterations: DefaultMaxIterations,
		gradientTol:   DefaultGradientTolerance,
		objectiveTol:  DefaultObjectiveTolerance,
		ridge:         DefaultRidge,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}
