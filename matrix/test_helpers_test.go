// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mathrobo/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At/Set fallback path in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		tb.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(tb testing.TB, m matrix.Matrix, i, j int, v float64) {
	tb.Helper()
	if err := m.Set(i, j, v); err != nil {
		tb.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// fillDenseRand fills m with values in [-1,1) from a seeded source.
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			MustSet(tb, m, i, j, 2*rng.Float64()-1)
		}
	}
}

// rotZ90 is the 90° rotation about z, whose diagonal carries zeros.
func rotZ90(tb testing.TB) *matrix.Dense {
	return MustFromRows(tb, [][]float64{
		{0, -1, 0},
		{1, 0, 0},
		{0, 0, 1},
	})
}
