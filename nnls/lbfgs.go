package nnls

import (
	"context"
	"math"

	"github.com/isocorr-go/isocorr/matrix"
	"gonum.org/v1/gonum/optimize"
)

// solveLBFGS minimizes 1/2||v-Ax||^2 with gonum's LBFGS, projecting every
// candidate point to the non-negative orthant before it is evaluated. This
// is the same pattern a bound-unaware optimize.Problem is driven with
// elsewhere in the ecosystem (fit a smooth objective, clamp the domain by
// hand) — gonum's optimize package has no native box-constraint support, so
// the projection approximates L-BFGS-B rather than implementing it exactly.
func solveLBFGS(ctx context.Context, a *matrix.Dense, v []float64, o solverOptions) (x []float64, info Info, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = rerr
				return
			}
			panic(r)
		}
	}()

	cols := a.Cols()

	cancelled := false
	clamp := func(x []float64) []float64 {
		p := make([]float64, len(x))
		for i, xi := range x {
			if xi < 0 {
				p[i] = 0
			} else {
				p[i] = xi
			}
		}
		return p
	}

	residual := func(x []float64) []float64 {
		p := clamp(x)
		ax, err := matrix.MatVec(a, p)
		if err != nil {
			// Shape was validated before calling solveLBFGS; this would
			// indicate an internal invariant violation.
			panic(errorf("solveLBFGS", err))
		}
		r, err := subVectors(ax, v)
		if err != nil {
			panic(errorf("solveLBFGS", err))
		}
		return r
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			if ctx.Err() != nil {
				cancelled = true
				return math.Inf(1)
			}
			r := residual(x)
			sum, err := sumOfSquares(r)
			if err != nil {
				panic(errorf("solveLBFGS", err))
			}
			return 0.5 * sum
		},
		Grad: func(grad, x []float64) {
			r := residual(x)
			at, err := matrix.Transpose(a)
			if err != nil {
				panic(errorf("solveLBFGS", err))
			}
			g, err := matrix.MatVec(at, r)
			if err != nil {
				panic(errorf("solveLBFGS", err))
			}
			copy(grad, g)
		},
	}

	x0 := make([]float64, cols)

	settings := &optimize.Settings{
		GradientThreshold: o.gradientTol,
		MajorIterations:   o.maxIterations,
		Converger: &optimize.FunctionConverge{
			Relative:   o.objectiveTol,
			Iterations: 1,
		},
	}

	result, minErr := optimize.Minimize(problem, x0, settings, &optimize.LBFGS{})
	if cancelled || ctx.Err() != nil {
		return nil, Info{}, errorf("solveLBFGS", ErrCancelled)
	}
	if minErr != nil {
		return nil, Info{Iterations: 0, Converged: false}, errorf("solveLBFGS", minErr)
	}

	x = clamp(result.X)

	return x, Info{
		Iterations: result.Stats.MajorIterations,
		Converged: result.Status == optimize.GradientThreshold ||
			result.Status == optimize.FunctionConvergence ||
			result.Status == optimize.Success,
	}, nil
}
