package mdv

// Convolve returns the full discrete convolution of u and v:
// (u⊛v)_k = Σ_{i+j=k} u_i·v_j. The result has length len(u)+len(v)-1; the
// length is never truncated here; truncation is the correction package's
// own concern, applied after each convolution step it performs.
//
// Convolve returns nil if either input is empty.
func Convolve(u, v []float64) []float64 {
	if len(u) == 0 || len(v) == 0 {
		return nil
	}

	out := make([]float64, len(u)+len(v)-1)
	for i, ui := range u {
		if ui == 0 {
			continue
		}
		for j, vj := range v {
			out[i+j] += ui * vj
		}
	}

	return out
}

// ConvolveRepeat convolves v with factor n times in succession
// (v⊛factor⊛factor⊛...), growing the length by len(factor)-1 at each
// step. n == 0 returns a copy of v unchanged.
func ConvolveRepeat(v, factor []float64, n int) []float64 {
	out := append([]float64(nil), v...)
	for i := 0; i < n; i++ {
		out = Convolve(out, factor)
	}

	return out
}

// TruncateOrPad returns a copy of v with exactly n entries: truncated if
// len(v) > n, zero-padded on the right if len(v) < n.
func TruncateOrPad(v []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, v)

	return out
}
