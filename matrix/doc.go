// Package matrix provides a dense linear-algebra kernel: Add, Sub, Mul,
// Transpose, Scale, Hadamard, MatVec, and QR over a small Matrix interface
// with a row-major Dense implementation.
//
// Every kernel fails fast on nil operands and shape mismatches via the
// sentinel errors in errors.go, and favors a flat-slice fast path when
// both operands are *Dense. Higher-level packages (correction, nnls) build
// on this kernel rather than reaching for an external linear-algebra
// dependency, since their matrices are small and dense by construction.
package matrix
