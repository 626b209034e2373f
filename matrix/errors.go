// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every kernel returns one of these sentinels, optionally wrapped with an
// operation tag; tests match them via errors.Is. Public operations never
// panic on user-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Kernels wrap with fmt.Errorf("<Op>: %w", ErrX) at the facade; callers still
// match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when a requested window or block does not fit
	// inside the matrix it addresses.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a zero pivot survives partial pivoting in Inverse.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotSkewSymmetric signals that A + Aᵀ exceeded the tolerance where a
	// skew-symmetric (so(3)-like) matrix was required.
	ErrNotSkewSymmetric = errors.New("matrix: matrix is not skew-symmetric within tol")

	// ErrNotBlockLowerTriangular signals a non-zero block above the block diagonal.
	ErrNotBlockLowerTriangular = errors.New("matrix: matrix is not block lower-triangular within tol")

	// ErrRaggedRows indicates that row slices passed to NewFromRows differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
