// SPDX-License-Identifier: MIT

package cmtm

import (
	"fmt"

	"github.com/katalvlaran/mathrobo/matrix"
	"github.com/katalvlaran/mathrobo/so3"
)

const (
	// DimRotational is the tangent dimension of SO(3).
	DimRotational = 3
	// DimSpatial is the tangent dimension of SE(3).
	DimSpatial = 6
)

// hatTable dispatches the skew operator by tangent dimension. Only lookups
// are performed, never iteration.
var hatTable = map[int]func(v []float64) *matrix.Dense{
	DimRotational: hatRotational,
	DimSpatial:    hatSpatial,
}

// ValidateDimension returns ErrUnsupportedDimension unless d is 3 or 6.
func ValidateDimension(d int) error {
	if _, ok := hatTable[d]; !ok {
		return fmt.Errorf("ValidateDimension(%d): %w", d, ErrUnsupportedDimension)
	}

	return nil
}

// Hat returns the D×D skew operator of v for D = dim.
//
// Errors:
//   - ErrUnsupportedDimension when dim ∉ {3, 6}.
//   - matrix.ErrDimensionMismatch when len(v) != dim.
func Hat(dim int, v []float64) (*matrix.Dense, error) {
	const tag = "Hat"
	if err := ValidateDimension(dim); err != nil {
		return nil, cmtmErrorf(tag, err)
	}
	if err := matrix.ValidateVecLen(v, dim); err != nil {
		return nil, cmtmErrorf(tag, err)
	}

	return hatTable[dim](v), nil
}

// hatOf is Hat for a statically sized vector; its dimension is always valid.
func hatOf[V Vector](v V) *matrix.Dense {
	return hatTable[len(v)](toSlice(v))
}

// hatRotational is [ω]× as a 3×3 Dense.
func hatRotational(v []float64) *matrix.Dense {
	h := so3.Hat([3]float64{v[0], v[1], v[2]})

	return matrix.Must(matrix.NewFromRows([][]float64{h[0][:], h[1][:], h[2][:]}))
}

// hatSpatial places [ω]× on both diagonal blocks and [v]× in the lower-left
// block of a 6×6 Dense, mirroring the SE(3) adjoint layout. Each skew block is
// written in place through a 3×3 view.
func hatSpatial(v []float64) *matrix.Dense {
	out := matrix.Must(matrix.NewDense(DimSpatial, DimSpatial))
	w := so3.Hat([3]float64{v[0], v[1], v[2]})
	lin := so3.Hat([3]float64{v[3], v[4], v[5]})
	putBlock3(out, 0, 0, w)
	putBlock3(out, 3, 3, w)
	putBlock3(out, 3, 0, lin)

	return out
}

// putBlock3 writes b into the 3×3 window of m at (r0, c0). Callers only pass
// offsets inside a 6×6 matrix.
func putBlock3(m *matrix.Dense, r0, c0 int, b [3][3]float64) {
	view, err := m.View(r0, c0, 3, 3)
	if err != nil {
		panic(err)
	}
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			_ = view.Set(i, j, b[i][j])
		}
	}
}
