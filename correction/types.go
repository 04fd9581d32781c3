package correction

import "github.com/isocorr-go/isocorr/element"

// TracerConfig describes the tracer element and how its isotopic purity
// and natural abundance enter the correction.
type TracerConfig struct {
	// Element is e*, the tracer element. It must appear in the metabolite
	// formula with count n >= 1.
	Element element.Symbol

	// Purity is p, the tracer isotope distribution at labeled positions.
	// Length must equal k_e*, non-negative, summing to 1.
	Purity []float64

	// ExcludeTracerNatab, if true, excludes the tracer element's natural
	// abundance contribution at unlabeled positions: equivalent to
	// excluding the tracer element from the metabolite's natural-abundance
	// MDV.
	ExcludeTracerNatab bool
}

// WarningKind classifies a diagnostic collected during a Correct call.
// Warnings are a side channel: they never abort the call.
type WarningKind int

const (
	// WarningNegativeMeasurement reports that v_measured contained one or
	// more entries below zero; tolerated but flagged.
	WarningNegativeMeasurement WarningKind = iota

	// WarningZeroSignal reports that Sigma v_measured == 0, so the solver
	// was short-circuited to x = 0.
	WarningZeroSignal

	// WarningSolverStalled reports that the solver reached its iteration
	// cap before satisfying the convergence tolerance; the returned
	// distribution is still the solver's best-effort result.
	WarningSolverStalled
)

// Warning is one side-channel diagnostic attached to a Result.
type Warning struct {
	Kind    WarningKind
	Message string
}

// Result is the outcome of a single Correct call.
type Result struct {
	// Distribution is d, the corrected isotopologue distribution of
	// length n+1, summing to 1 (or the zero vector if Sigma x == 0).
	Distribution []float64

	// Residuum is r, the fit residual normalized by Sigma v_measured (or
	// left unnormalized if Sigma v_measured == 0).
	Residuum []float64

	// MeanEnrichment is ME, present only when it was requested and
	// Sigma x > 0.
	MeanEnrichment    float64
	HasMeanEnrichment bool

	// Warnings carries non-fatal diagnostics collected during the call.
	Warnings []Warning

	// Converged reports whether the NNLS solver satisfied its convergence
	// tolerance before the iteration cap (always true after the
	// zero-signal short-circuit).
	Converged bool
}
