package nnls

import (
	"context"
	"math"

	"github.com/isocorr-go/isocorr/matrix"
)

// solveActiveSet implements Lawson-Hanson active-set NNLS: it maintains a
// passive set P of coordinates allowed to move off zero, solves the
// unconstrained least-squares subproblem restricted to P via the normal
// equations (A_p^T A_p + ridge*I) x_p = A_p^T v, and moves coordinates
// between P and its complement until the KKT conditions for
// min ||v - A x||^2, x >= 0 are satisfied to tolerance.
func solveActiveSet(ctx context.Context, a *matrix.Dense, v []float64, o solverOptions) ([]float64, Info, error) {
	rows, cols := a.Rows(), a.Cols()
	x := make([]float64, cols)
	passive := make([]bool, cols)

	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, Info{}, errorf("solveActiveSet", err)
	}

	// w holds the negative gradient of 1/2||v-Ax||^2 w.r.t. x, i.e. A^T(v - A x).
	residual := make([]float64, rows)
	copy(residual, v)

	iterations := 0
	converged := false
	prevObjective := math.Inf(1)

	for iterations < o.maxIterations {
		if err := ctx.Err(); err != nil {
			return x, Info{Iterations: iterations, Converged: false}, errorf("solveActiveSet", ErrCancelled)
		}
		iterations++

		w, err := matrix.MatVec(at, residual)
		if err != nil {
			return nil, Info{}, errorf("solveActiveSet", err)
		}

		// Pick the most-violating inactive coordinate (largest positive
		// w, i.e. steepest descent, among those fixed at zero) to add to the
		// passive set.
		bestIdx := -1
		bestW := o.gradientTol
		for j := 0; j < cols; j++ {
			if passive[j] {
				continue
			}
			if w[j] > bestW {
				bestW = w[j]
				bestIdx = j
			}
		}

		if bestIdx < 0 {
			converged = true
			break
		}
		passive[bestIdx] = true

		// Inner loop: solve the passive-set subproblem, then fix up any
		// coordinates that went negative by moving them back to zero.
		for {
			if err := ctx.Err(); err != nil {
				return x, Info{Iterations: iterations, Converged: false}, errorf("solveActiveSet", ErrCancelled)
			}

			xp, idxs, err := solvePassiveSubproblem(a, v, passive, o.ridge)
			if err != nil {
				return nil, Info{}, errorf("solveActiveSet", err)
			}

			negIdx := -1
			alpha := math.Inf(1)
			for k, j := range idxs {
				if xp[k] < 0 {
					denom := x[j] - xp[k]
					if denom == 0 {
						continue
					}
					candidate := x[j] / denom
					if candidate < alpha {
						alpha = candidate
						negIdx = j
					}
				}
			}

			if negIdx < 0 {
				for k, j := range idxs {
					x[j] = xp[k]
				}
				break
			}

			// Step partway toward xp, then drop the coordinate that hit
			// zero from the passive set and resolve.
			base := make([]float64, len(idxs))
			for k, j := range idxs {
				base[k] = x[j]
			}
			stepped, err := lerp(base, xp, alpha)
			if err != nil {
				return nil, Info{}, errorf("solveActiveSet", err)
			}
			for k, j := range idxs {
				x[j] = stepped[k]
			}
			for j := range passive {
				if passive[j] && x[j] <= 0 {
					passive[j] = false
					x[j] = 0
				}
			}
		}

		ax, err := matrix.MatVec(a, x)
		if err != nil {
			return nil, Info{}, errorf("solveActiveSet", err)
		}
		residual, err = subVectors(v, ax)
		if err != nil {
			return nil, Info{}, errorf("solveActiveSet", err)
		}

		objective, err := sumOfSquares(residual)
		if err != nil {
			return nil, Info{}, errorf("solveActiveSet", err)
		}
		objective *= 0.5
		if prevObjective < math.Inf(1) {
			denom := prevObjective
			if denom == 0 {
				denom = 1
			}
			if math.Abs(prevObjective-objective)/denom <= o.objectiveTol {
				converged = true
				prevObjective = objective
				break
			}
		}
		prevObjective = objective
	}

	return x, Info{Iterations: iterations, Converged: converged}, nil
}

// solvePassiveSubproblem solves min ||v - A_p x_p||^2 over the columns
// marked passive, via the ridge-regularized normal equations. Returns the
// solved values alongside the original column indices they correspond to.
func solvePassiveSubproblem(a *matrix.Dense, v []float64, passive []bool, ridge float64) ([]float64, []int, error) {
	idxs := make([]int, 0, len(passive))
	for j, p := range passive {
		if p {
			idxs = append(idxs, j)
		}
	}
	if len(idxs) == 0 {
		return nil, idxs, nil
	}

	rows := a.Rows()
	ap, err := matrix.NewDense(rows, len(idxs))
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < rows; i++ {
		for k, j := range idxs {
			val, err := a.At(i, j)
			if err != nil {
				return nil, nil, err
			}
			if err := ap.Set(i, k, val); err != nil {
				return nil, nil, err
			}
		}
	}

	apT, err := matrix.Transpose(ap)
	if err != nil {
		return nil, nil, err
	}
	normal, err := matrix.Mul(apT, ap)
	if err != nil {
		return nil, nil, err
	}
	for k := range idxs {
		cur, _ := normal.At(k, k)
		if err := normal.Set(k, k, cur+ridge); err != nil {
			return nil, nil, err
		}
	}

	rhs, err := matrix.MatVec(apT, v)
	if err != nil {
		return nil, nil, err
	}

	// Solve normal*xp = rhs via QR rather than an explicit inverse: QR
	// factors normal as Q^T*R (Householder, see matrix.QR), so
	// Q^T*R*xp = rhs. Left-multiplying by Q and using Q*Q^T = I gives
	// R*xp = Q*rhs, a triangular system back-substitution solves exactly,
	// which avoids the conditioning loss of computing and applying an
	// explicit matrix inverse on the (possibly near-singular) normal matrix.
	q, r, err := matrix.QR(normal)
	if err != nil {
		return nil, nil, err
	}
	qRhs, err := matrix.MatVec(q, rhs)
	if err != nil {
		return nil, nil, err
	}
	xp, err := backSubstituteUpper(r, qRhs)
	if err != nil {
		return nil, nil, err
	}

	return xp, idxs, nil
}
