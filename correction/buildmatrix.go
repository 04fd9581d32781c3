package correction

import (
	"math"

	"github.com/isocorr-go/isocorr/matrix"
	"github.com/isocorr-go/isocorr/mdv"
)

// buildMatrix constructs the M x (n+1) correction matrix A. m is the
// natural-abundance MDV of the metabolite (plus derivative, if any); t is
// the tracer element's natural-abundance vector; p is the purity vector; n
// is the tracer atom count; rows is M, the measurement length.
//
// Column j encodes the scenario "j tracer positions are occupied by tracer
// atoms distributed per purity, n-j positions carry tracer at natural
// abundance (unless excluded), and all non-tracer elements already
// contribute natural abundance via m." The truncate-after-each-convolution
// policy reflects the fact that intensity beyond the measurement
// window is unobservable and must not fold back into lower indices.
func buildMatrix(m, t, p []float64, n, rows int, excludeTracerNatab bool) (*matrix.Dense, error) {
	delta := len(t) - 1
	if n*delta+1 > rows {
		return nil, errorf("buildMatrix", ErrMeasurementTooShort)
	}
	if rows > len(m)+n*delta {
		return nil, errorf("buildMatrix", ErrFragmentTooSmall)
	}

	a, err := matrix.NewDense(rows, n+1)
	if err != nil {
		return nil, errorf("buildMatrix", err)
	}

	base := mdv.TruncateOrPad(m, rows)

	for j := 0; j <= n; j++ {
		col := append([]float64(nil), base...)

		for k := 0; k < j; k++ {
			col = mdv.TruncateOrPad(mdv.Convolve(col, p), rows)
		}

		if !excludeTracerNatab {
			for k := 0; k < n-j; k++ {
				col = mdv.TruncateOrPad(mdv.Convolve(col, t), rows)
			}
		}

		for i := 0; i < rows; i++ {
			if err := a.Set(i, j, col[i]); err != nil {
				return nil, errorf("buildMatrix", err)
			}
		}
	}

	return a, nil
}

// validatePurity checks purity length against k_tracer and its sum against
// 1 within eps.
func validatePurity(p []float64, kTracer int, eps float64) error {
	if len(p) != kTracer {
		return errorf("validatePurity", ErrPurityShapeMismatch)
	}

	sum := 0.0
	for _, v := range p {
		sum += v
	}
	if math.Abs(sum-1.0) > eps {
		return errorf("validatePurity", ErrPuritySumInvalid)
	}

	return nil
}
