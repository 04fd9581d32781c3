// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set. All algorithms MUST return these
// sentinels (or a wrapped form via matrixErrorf) and tests MUST check them
// via errors.Is. Panics are reserved for programmer errors (e.g. invalid
// option construction), never for data the caller provides at runtime.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a triangular solve encounters a zero
	// diagonal entry (e.g. a rank-deficient passive-set solve upstream).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Kept as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange

// ErrMatrixDimensionMismatch aliases ErrDimensionMismatch so callers that
// match on either name observe the same sentinel.
var ErrMatrixDimensionMismatch = ErrDimensionMismatch
