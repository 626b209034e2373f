// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise comparison kernels shared by the motion-group packages and
//     their tests: tolerance equality, max-abs difference and finiteness checks.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Dense fast-path operates on a single flat buffer (row-major).
//   - No allocations; O(r*c) time.

package matrix

import (
	"math"
)

const (
	opAllClose   = "AllClose"
	opMaxAbsDiff = "MaxAbsDiff"
	opFinite     = "ValidateFinite"
)

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - NaN or Inf tolerances yield ErrNaNInf.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	close := func(av, bv float64) bool {
		return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var idx int
			for idx = 0; idx < len(da.data); idx++ {
				if !close(da.data[idx], db.data[idx]) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var i, j int
	var av, bv float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !close(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// MaxAbsDiff returns max |a[i,j] - b[i,j]| over all entries.
// Used for diagnostics where a pass/fail answer from AllClose is not enough.
// Complexity: O(r*c).
func MaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}

	var worst float64
	r, c := a.Rows(), a.Cols()
	var i, j int
	var av, bv float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if d := math.Abs(av - bv); d > worst {
				worst = d
			}
		}
	}

	return worst, nil
}

// ValidateFinite returns ErrNaNInf if any entry of m is NaN or ±Inf.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFinite, err)
	}
	if d, ok := m.(*Dense); ok {
		finite := true
		d.Do(func(_, _ int, v float64) bool {
			finite = !math.IsNaN(v) && !math.IsInf(v, 0)
			return finite
		})
		if !finite {
			return matrixErrorf(opFinite, ErrNaNInf)
		}

		return nil
	}

	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return matrixErrorf(opFinite, ErrNaNInf)
			}
		}
	}

	return nil
}
