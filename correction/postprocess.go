package correction

// postProcess normalizes the raw solver solution x and residual e = v - Ax
// into a Result's distribution and residuum, optionally computing
// mean enrichment.
func postProcess(x []float64, residual []float64, v []float64, wantMeanEnrichment bool, invariantEps float64) (Result, error) {
	sumX := 0.0
	for _, xi := range x {
		sumX += xi
	}

	d := make([]float64, len(x))
	if sumX > 0 {
		for i, xi := range x {
			d[i] = xi / sumX
		}

		sum := 0.0
		for _, di := range d {
			sum += di
		}
		if absDiff(sum, 1.0) > invariantEps {
			return Result{}, errorf("postProcess", ErrInternalInvariant)
		}
	}

	sumV := 0.0
	for _, vi := range v {
		sumV += vi
	}

	r := make([]float64, len(residual))
	for i, ei := range residual {
		if sumV > 0 {
			r[i] = ei / sumV
		} else {
			r[i] = ei
		}
	}

	result := Result{
		Distribution: d,
		Residuum:     r,
	}

	if wantMeanEnrichment && sumX > 0 {
		n := len(d) - 1
		if n > 0 {
			me := 0.0
			for i, di := range d {
				me += float64(i) * di
			}
			me /= float64(n)
			result.MeanEnrichment = me
			result.HasMeanEnrichment = true
		}
	}

	return result, nil
}

func absDiff(a, b float64) float64 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}
