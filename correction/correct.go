package correction

import (
	"context"
	"errors"

	"github.com/isocorr-go/isocorr/element"
	"github.com/isocorr-go/isocorr/matrix"
	"github.com/isocorr-go/isocorr/mdv"
	"github.com/isocorr-go/isocorr/nnls"
)

// Correct is the package's entry point. Given an isotope table, a
// metabolite formula, an optional derivative formula, a measured intensity
// vector, and a tracer configuration, it validates inputs in a fixed order,
// builds the natural-abundance MDV and correction matrix, fits a
// non-negative least-squares solution, and post-processes the result.
//
// Checks short-circuit deterministically in this order: formula validity,
// tracer present, measurement length, purity shape/sum, build MDV, build A,
// solve, post-process. Every call is a pure function of its inputs.
//
// When the solver exhausts its iteration cap, Correct returns both a
// non-zero Result (the solver's best-effort x, post-processed as usual) and
// a non-nil error wrapping ErrSolverDidNotConverge. Callers that want the
// diagnostic value must check the returned Result even when err != nil in
// that one case.
func Correct(ctx context.Context, table *element.Table, metaboliteFormula, derivativeFormula string, vMeasured []float64, tracer TracerConfig, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	metabolite, err := element.Parse(metaboliteFormula, table)
	if err != nil {
		return Result{}, errorf("Correct", err)
	}
	derivative, err := element.Parse(derivativeFormula, table)
	if err != nil {
		return Result{}, errorf("Correct", err)
	}

	n := metabolite.Count(tracer.Element)
	if n < 1 {
		return Result{}, errorf("Correct", ErrTracerAbsent)
	}

	tracerAbundances, ok := table.Abundances(tracer.Element)
	if !ok || len(tracerAbundances) < 2 {
		return Result{}, errorf("Correct", ErrIsotopeTableInvalid)
	}
	delta := len(tracerAbundances) - 1

	rows := len(vMeasured)
	if n*delta+1 > rows {
		return Result{}, errorf("Correct", ErrMeasurementTooShort)
	}

	if err := validatePurity(tracer.Purity, len(tracerAbundances), o.puritySumEpsilon); err != nil {
		return Result{}, errorf("Correct", err)
	}

	naturalMDV, err := mdv.NaturalAbundance(table, metabolite, derivative, tracer.Element, tracer.ExcludeTracerNatab)
	if err != nil {
		return Result{}, errorf("Correct", err)
	}

	a, err := buildMatrix(naturalMDV, []float64(tracerAbundances), tracer.Purity, n, rows, tracer.ExcludeTracerNatab)
	if err != nil {
		return Result{}, errorf("Correct", err)
	}

	warnings := collectWarnings(vMeasured)

	sumV := 0.0
	for _, v := range vMeasured {
		sumV += v
	}

	if sumV == 0 {
		x := make([]float64, n+1)
		residual := make([]float64, rows)
		result, err := postProcess(x, residual, vMeasured, o.wantMeanEnrich, o.invariantEpsilon)
		if err != nil {
			return Result{}, errorf("Correct", err)
		}
		result.Warnings = warnings
		result.Converged = true

		return result, nil
	}

	x, info, err := nnls.Solve(ctx, a, vMeasured, o.solverOpts...)
	if err != nil {
		if errors.Is(err, nnls.ErrCancelled) {
			return Result{}, errorf("Correct", ErrCancelled)
		}

		return Result{}, errorf("Correct", err)
	}

	if !info.Converged {
		warnings = append(warnings, Warning{
			Kind:    WarningSolverStalled,
			Message: "nnls solver reached its iteration cap before satisfying the convergence tolerance",
		})
	}

	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return Result{}, errorf("Correct", err)
	}
	residual := make([]float64, rows)
	for i := range residual {
		residual[i] = vMeasured[i] - ax[i]
	}

	result, err := postProcess(x, residual, vMeasured, o.wantMeanEnrich, o.invariantEpsilon)
	if err != nil {
		return Result{}, errorf("Correct", err)
	}
	result.Warnings = warnings
	result.Converged = info.Converged

	if !info.Converged {
		return result, errorf("Correct", ErrSolverDidNotConverge)
	}

	return result, nil
}

// collectWarnings scans v_measured for entries that are tolerated but
// diagnostic-worthy: negative entries surface
// WarningNegativeMeasurement, and a vector summing to zero surfaces
// WarningZeroSignal (Correct then takes the zero-signal short circuit).
func collectWarnings(v []float64) []Warning {
	var warnings []Warning
	for _, vi := range v {
		if vi < 0 {
			warnings = append(warnings, Warning{
				Kind:    WarningNegativeMeasurement,
				Message: "measurement vector contains a negative entry",
			})
			break
		}
	}

	sum := 0.0
	for _, vi := range v {
		sum += vi
	}
	if sum == 0 {
		warnings = append(warnings, Warning{
			Kind:    WarningZeroSignal,
			Message: "measurement vector sums to zero; solver was not invoked",
		})
	}

	return warnings
}
