// Package element is the leaf of the correction pipeline: it models
// chemical element symbols, their natural isotope-abundance vectors, and
// the elemental formulas built from them.
//
// A Table is an immutable, read-only mapping from element symbol to an
// ordered isotope-abundance vector (index i = i-th nominal mass-shift
// step). Formula is a {symbol -> atom count} mapping produced either by
// hand or by Parse, which tokenizes a formula string such as "C3H4O3".
//
// Nothing in this package allocates global state; a Table is constructed
// once by the caller (or via isotopedb) and passed explicitly to every
// downstream stage (mdv, correction).
package element
