// SPDX-License-Identifier: MIT
// Package matrix_test - element-wise comparison kernels.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mathrobo/matrix"
	"github.com/stretchr/testify/require"
)

func TestAllClose(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{1, 2}, {3, 4 + 1e-9}})

	ok, err := matrix.AllClose(a, b, 0, 1e-8)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-10)
	require.NoError(t, err)
	require.False(t, ok)

	// rtol scales with |b|: 1e-9 ≤ 1e-9*4.
	ok, err = matrix.AllClose(hide{a}, hide{b}, 1e-9, 0)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, MustDense(t, 3, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMaxAbsDiff(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, -2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{1.5, -2}, {3, 1}})
	d, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	require.Equal(t, 3.0, d)

	_, err = matrix.MaxAbsDiff(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestValidateFinite(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.NoError(t, matrix.ValidateFinite(m))
	require.NoError(t, matrix.ValidateFinite(hide{m}))

	MustSet(t, m, 1, 0, math.Inf(-1))
	require.ErrorIs(t, matrix.ValidateFinite(m), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(hide{m}), matrix.ErrNaNInf)

	// a bad entry ahead of finite ones must still be reported
	n := MustFromRows(t, [][]float64{{math.NaN(), 1}, {2, 3}})
	require.ErrorIs(t, matrix.ValidateFinite(n), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(hide{n}), matrix.ErrNaNInf)
}
