package nnls

import (
	"context"

	"github.com/isocorr-go/isocorr/matrix"
)

// Info reports diagnostics about a completed Solve call.
type Info struct {
	// Iterations is the number of outer iterations the backend performed.
	Iterations int
	// Converged reports whether the backend's stopping criterion was met
	// before the iteration cap was reached.
	Converged bool
}

// Solve finds x >= 0 minimizing ||v - A x||^2, dispatching to the backend
// selected via WithSolver (SolverActiveSet by default). ctx is checked
// between outer iterations; a cancelled context aborts the solve with
// ErrCancelled and no partial commitment.
func Solve(ctx context.Context, a matrix.Matrix, v []float64, opts ...Option) ([]float64, Info, error) {
	if a == nil {
		return nil, Info{}, errorf("Solve", ErrDimensionMismatch)
	}
	if a.Rows() != len(v) || a.Rows() == 0 || a.Cols() == 0 {
		return nil, Info{}, errorf("Solve", ErrDimensionMismatch)
	}
	if err := ctx.Err(); err != nil {
		return nil, Info{}, errorf("Solve", ErrCancelled)
	}

	dense, err := toDense(a)
	if err != nil {
		return nil, Info{}, errorf("Solve", err)
	}

	o := gatherOptions(opts...)

	switch o.kind {
	case SolverLBFGS:
		return solveLBFGS(ctx, dense, v, o)
	default:
		return solveActiveSet(ctx, dense, v, o)
	}
}

// toDense returns a's concrete *Dense, or a freshly materialized copy when
// a is some other Matrix implementation. Both active-set and LBFGS backends
// need direct row/column access too often to justify the interface-dispatch
// cost of operating through the Matrix interface on every element.
func toDense(a matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := a.(*matrix.Dense); ok {
		return d, nil
	}

	d, err := matrix.NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			v, err := a.At(i, j)
			if err != nil {
				return nil, err
			}
			if err := d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}
