package nnls

import "github.com/isocorr-go/isocorr/matrix"

// columnOf wraps v as an n x 1 Dense matrix so the matrix package's
// elementwise kernels (Add, Sub, Scale, Hadamard) can operate on it.
func columnOf(v []float64) (*matrix.Dense, error) {
	d, err := matrix.NewDense(len(v), 1)
	if err != nil {
		return nil, err
	}
	for i, vi := range v {
		if err := d.Set(i, 0, vi); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// columnTo extracts column 0 of an n x 1 matrix back into a []float64.
func columnTo(m matrix.Matrix) ([]float64, error) {
	n := m.Rows()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := m.At(i, 0)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// subVectors computes a - b elementwise via matrix.Sub on column-vector
// wrappers of a and b.
func subVectors(a, b []float64) ([]float64, error) {
	ma, err := columnOf(a)
	if err != nil {
		return nil, err
	}
	mb, err := columnOf(b)
	if err != nil {
		return nil, err
	}
	res, err := matrix.Sub(ma, mb)
	if err != nil {
		return nil, err
	}

	return columnTo(res)
}

// lerp computes base + alpha*(target-base) via matrix.Sub, matrix.Scale,
// and matrix.Add on column-vector wrappers. Used to take a partial step
// toward an unconstrained passive-set solution.
func lerp(base, target []float64, alpha float64) ([]float64, error) {
	delta, err := subVectors(target, base)
	if err != nil {
		return nil, err
	}
	deltaCol, err := columnOf(delta)
	if err != nil {
		return nil, err
	}
	scaled, err := matrix.Scale(deltaCol, alpha)
	if err != nil {
		return nil, err
	}
	scaledVec, err := columnTo(scaled)
	if err != nil {
		return nil, err
	}
	baseCol, err := columnOf(base)
	if err != nil {
		return nil, err
	}
	scaledCol, err := columnOf(scaledVec)
	if err != nil {
		return nil, err
	}
	sum, err := matrix.Add(baseCol, scaledCol)
	if err != nil {
		return nil, err
	}

	return columnTo(sum)
}

// sumOfSquares computes sum(r_i^2) via matrix.Hadamard on a column-vector
// wrapper of r, rather than a hand-written elementwise product loop.
func sumOfSquares(r []float64) (float64, error) {
	rc, err := columnOf(r)
	if err != nil {
		return 0, err
	}
	sq, err := matrix.Hadamard(rc, rc)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for i := 0; i < sq.Rows(); i++ {
		v, err := sq.At(i, 0)
		if err != nil {
			return 0, err
		}
		sum += v
	}

	return sum, nil
}

// backSubstituteUpper solves the upper-triangular system r*x = y for x.
func backSubstituteUpper(r matrix.Matrix, y []float64) ([]float64, error) {
	n := r.Rows()
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for k := i + 1; k < n; k++ {
			rik, err := r.At(i, k)
			if err != nil {
				return nil, err
			}
			sum -= rik * x[k]
		}
		rii, err := r.At(i, i)
		if err != nil {
			return nil, err
		}
		if rii == 0 {
			return nil, matrix.ErrSingular
		}
		x[i] = sum / rii
	}

	return x, nil
}
