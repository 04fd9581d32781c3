// Package correction builds the correction matrix for an isotope-labeling
// experiment and fits a measured mass fraction vector against it, recovering
// the corrected tracer-isotopologue distribution, the fit residuum, and
// optionally the mean isotopic enrichment.
//
// Correct is the package's entry point: given an isotope table, metabolite
// and derivative formulas, a tracer configuration, and a measured
// intensity vector, it validates the inputs in a fixed order, builds the
// natural-abundance MDV and correction matrix, fits the non-negative
// least-squares problem via the nnls package, and post-processes the raw
// solution into a Result. Every call is a pure function of its inputs: no
// caches, no globals, no shared mutable state.
package correction
