package mdv

import "github.com/isocorr-go/isocorr/element"

// NaturalAbundance computes the natural-abundance mass distribution vector
// for a metabolite moiety, optionally combined with a derivative moiety.
//
// The tracer element is always excluded from the metabolite moiety's
// contribution. excludeTracerNatab governs whether the tracer's natural
// abundance is mixed back in at the correction-matrix stage instead, so it
// has no effect on the MDV computed here. It is still accepted as a
// parameter so the signature matches how callers in this package think
// about the two stages together. The derivative moiety, if present,
// contributes natural abundance for every atom it has, including the
// tracer element.
//
// Both formulas are folded in lexicographic symbol order (Formula.SortedSymbols)
// for reproducibility; convolution is commutative and associative, so any
// fixed order produces the same result up to floating-point round-off.
func NaturalAbundance(t *element.Table, metabolite, derivative element.Formula, tracer element.Symbol, excludeTracerNatab bool) ([]float64, error) {
	_ = excludeTracerNatab // inert at this stage; consumed at the correction-matrix stage

	result := []float64{1.0}

	for _, sym := range metabolite.SortedSymbols() {
		if sym == tracer {
			continue
		}
		n := metabolite.Count(sym)
		ab, ok := t.Abundances(sym)
		if !ok {
			return nil, errorf("NaturalAbundance", element.ErrUnknownElement)
		}
		result = ConvolveRepeat(result, ab, n)
	}

	for _, sym := range derivative.SortedSymbols() {
		n := derivative.Count(sym)
		ab, ok := t.Abundances(sym)
		if !ok {
			return nil, errorf("NaturalAbundance", element.ErrUnknownElement)
		}
		result = ConvolveRepeat(result, ab, n)
	}

	return result, nil
}
