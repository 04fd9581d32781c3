// Package isotopedb loads an element.Table from a tab-separated isotope
// table file: one element per line, first field the symbol, remaining
// fields the abundance vector in ascending mass-shift order; blank lines
// are ignored.
//
// This package is an external collaborator, not part of the core: the
// core (element, mdv, correction, nnls) only ever consumes an already-built
// *element.Table and never touches a filesystem path itself.
package isotopedb
