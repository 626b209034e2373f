// SPDX-License-Identifier: MIT

// Package matrix - canonical builders for Dense values.
//
// Purpose:
//   - Create identity and literal matrices without hand-written Set loops.
//   - Keep ownership explicit: builders copy their inputs, callers may reuse them.

package matrix

import "fmt"

const (
	ctxIdentity = "NewIdentity"
	ctxFromRows = "NewFromRows"
)

// NewIdentity returns the n×n identity matrix.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", ctxIdentity, n, err)
	}
	var i int
	for i = 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// NewFromRows builds a Dense from row slices, copying every value.
// MAIN DESCRIPTION:
//   - Literal constructor used by the motion-group packages to lift fixed-size
//     arrays ([3][3], [4][4], [6][6]) into the Matrix world.
//
// Implementation:
//   - Stage 1: validate at least one non-empty row.
//   - Stage 2: validate all rows share the first row's length.
//   - Stage 3: copy row by row into the flat buffer.
//
// Errors:
//   - ErrInvalidDimensions for zero rows or zero-length rows.
//   - ErrRaggedRows when row lengths differ.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}

	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFromRows, i, len(rows[i]), c, ErrRaggedRows)
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Must panics if err is non-nil and otherwise returns m.
// Intended for package-level fixtures and shapes that are correct by construction.
func Must(m *Dense, err error) *Dense {
	if err != nil {
		panic(err)
	}

	return m
}
