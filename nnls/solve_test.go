package nnls_test

import (
	"context"
	"testing"

	"github.com/isocorr-go/isocorr/matrix"
	"github.com/isocorr-go/isocorr/nnls"
	"github.com/stretchr/testify/require"
)

func denseFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, d.Set(i, j, v))
		}
	}
	return d
}

func TestSolve_DimensionMismatch(t *testing.T) {
	t.Parallel()

	a := denseFromRows(t, [][]float64{{1, 0}, {0, 1}})
	_, _, err := nnls.Solve(context.Background(), a, []float64{1, 2, 3})
	require.ErrorIs(t, err, nnls.ErrDimensionMismatch)
}

func TestSolve_NilMatrix(t *testing.T) {
	t.Parallel()

	_, _, err := nnls.Solve(context.Background(), nil, []float64{1})
	require.ErrorIs(t, err, nnls.ErrDimensionMismatch)
}

func TestSolve_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := denseFromRows(t, [][]float64{{1, 0}, {0, 1}})
	_, _, err := nnls.Solve(ctx, a, []float64{1, 2})
	require.ErrorIs(t, err, nnls.ErrCancelled)
}

func TestSolve_ActiveSet_IdentityRecoversExact(t *testing.T) {
	t.Parallel()

	a := denseFromRows(t, [][]float64{{1, 0}, {0, 1}})
	x, info, err := nnls.Solve(context.Background(), a, []float64{0.3, 0.7})
	require.NoError(t, err)
	require.True(t, info.Converged)
	require.InDelta(t, 0.3, x[0], 1e-6)
	require.InDelta(t, 0.7, x[1], 1e-6)
}

func TestSolve_ActiveSet_ClampsNegativeTarget(t *testing.T) {
	t.Parallel()

	// Without a non-negativity constraint, the least-squares solution for
	// this system would put a negative weight on the second column.
	a := denseFromRows(t, [][]float64{{1, 1}, {1, 2}})
	x, _, err := nnls.Solve(context.Background(), a, []float64{1, 0.5})
	require.NoError(t, err)
	for _, xi := range x {
		require.GreaterOrEqual(t, xi, -1e-9)
	}
}

func TestSolve_LBFGS_IdentityRecoversExact(t *testing.T) {
	t.Parallel()

	a := denseFromRows(t, [][]float64{{1, 0}, {0, 1}})
	x, _, err := nnls.Solve(context.Background(), a, []float64{0.3, 0.7}, nnls.WithSolver(nnls.SolverLBFGS))
	require.NoError(t, err)
	require.InDelta(t, 0.3, x[0], 1e-4)
	require.InDelta(t, 0.7, x[1], 1e-4)
}

func TestSolve_LBFGS_NonNegative(t *testing.T) {
	t.Parallel()

	a := denseFromRows(t, [][]float64{{1, 1}, {1, 2}})
	x, _, err := nnls.Solve(context.Background(), a, []float64{1, 0.5}, nnls.WithSolver(nnls.SolverLBFGS))
	require.NoError(t, err)
	for _, xi := range x {
		require.GreaterOrEqual(t, xi, -1e-9)
	}
}

func TestSolve_CustomOptions(t *testing.T) {
	t.Parallel()

	a := denseFromRows(t, [][]float64{{1, 0}, {0, 1}})
	x, info, err := nnls.Solve(context.Background(), a, []float64{0.4, 0.6},
		nnls.WithMaxIterations(5),
		nnls.WithGradientTolerance(1e-8),
		nnls.WithObjectiveTolerance(1e-10),
		nnls.WithRidge(1e-10),
	)
	require.NoError(t, err)
	require.LessOrEqual(t, info.Iterations, 5)
	require.InDelta(t, 0.4, x[0], 1e-5)
	require.InDelta(t, 0.6, x[1], 1e-5)
}

func TestWithMaxIterations_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { nnls.WithMaxIterations(0) })
}

func TestWithGradientTolerance_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { nnls.WithGradientTolerance(-1) })
}
