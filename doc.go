// Package isocorr corrects mass spectrometry isotopologue measurements for
// natural isotopic abundance, recovering the labeling pattern introduced by
// a tracer experiment.
//
// A correction run draws on seven packages:
//
//	element/      — periodic-table abundance data and elemental formula parsing
//	mdv/          — natural-abundance mass distribution vectors via discrete convolution
//	isotopedb/    — TSV loader for custom isotope abundance tables
//	metabolitedb/ — TSV loader for metabolite/derivative formula databases
//	matrix/       — dense linear-algebra kernel (Add, Mul, Scale, Hadamard, QR, MatVec)
//	nnls/         — non-negative least squares solvers (active-set and L-BFGS)
//	correction/   — correction-matrix construction and the Correct facade
//
// The correction/ package is the entry point most callers need: it accepts a
// measured mass-fraction vector plus a tracer configuration and returns the
// corrected isotopologue distribution, a residuum diagnostic, and, when
// requested, the mean enrichment.
//
//	go get github.com/isocorr-go/isocorr
package isocorr
