// Package mdv builds natural-abundance mass distribution vectors (MDVs)
// by repeated discrete convolution of per-element isotope-abundance
// vectors, and provides the convolution/truncation primitives the
// correction package reuses to build the correction matrix.
package mdv
