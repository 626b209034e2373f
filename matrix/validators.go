// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/structure checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap once more and callers still match via errors.Is.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil with length n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// validateTol rejects NaN/Inf tolerances and folds negatives to |tol|.
func validateTol(tag string, tol float64) (float64, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, validatorErrorf(tag, ErrNaNInf)
	}

	return math.Abs(tol), nil
}

// ValidateSkewSymmetric checks |A[i,j] + A[j,i]| ≤ tol for all i ≤ j.
// The diagonal therefore has to be zero within tol/2.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol), ErrNotSkewSymmetric.
// Complexity: O(n²).
func ValidateSkewSymmetric(m Matrix, tol float64) error {
	const tag = "ValidateSkewSymmetric"
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf(tag, err)
	}
	tol, err := validateTol(tag, tol)
	if err != nil {
		return err
	}

	n := m.Rows()
	var i, j int
	var aij, aji float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.Abs(aij+aji) > tol {
				return validatorErrorf(tag, ErrNotSkewSymmetric)
			}
		}
	}

	return nil
}

// ValidateBlockLowerTriangular checks that every entry above the block
// diagonal of an (n·b)×(n·b) matrix is zero within tol.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadShape (size not a multiple of
// block), ErrNaNInf (bad tol), ErrNotBlockLowerTriangular.
// Complexity: O((n·b)²).
func ValidateBlockLowerTriangular(m Matrix, block int, tol float64) error {
	const tag = "ValidateBlockLowerTriangular"
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf(tag, err)
	}
	if block <= 0 || m.Rows()%block != 0 {
		return validatorErrorf(tag, ErrBadShape)
	}
	tol, err := validateTol(tag, tol)
	if err != nil {
		return err
	}

	size := m.Rows()
	var i, j int
	var v float64
	for i = 0; i < size; i++ {
		// First column belonging to a block strictly right of row i's block.
		for j = (i/block + 1) * block; j < size; j++ {
			v, _ = m.At(i, j)
			if math.Abs(v) > tol {
				return validatorErrorf(tag, ErrNotBlockLowerTriangular)
			}
		}
	}

	return nil
}
