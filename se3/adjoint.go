// SPDX-License-Identifier: MIT

package se3

import (
	"github.com/katalvlaran/mathrobo/matrix"
	"github.com/katalvlaran/mathrobo/so3"
)

// Adjoint returns the 6×6 adjoint of g acting on twists [ω, v]:
//
//	| R        0 |
//	| [t]×·R   R |
//
// This block layout is the base matrix a spatial CMTM is built on.
func (g Transform) Adjoint() [6][6]float64 {
	r := g.rot.Matrix()
	tr := mul3(so3.Hat(g.trans), r)

	var out [6][6]float64
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			out[i][j] = r[i][j]
			out[i+3][j+3] = r[i][j]
			out[i+3][j] = tr[i][j]
		}
	}

	return out
}

// AdjointDense exports Adjoint() as a fresh *matrix.Dense.
func (g Transform) AdjointDense() *matrix.Dense {
	a := g.Adjoint()
	rows := make([][]float64, 6)
	var i int
	for i = 0; i < 6; i++ {
		rows[i] = a[i][:]
	}

	return matrix.Must(matrix.NewFromRows(rows))
}

// mul3 is the 3×3 product a·b.
func mul3(a, b [3][3]float64) [3][3]float64 {
	var out [3][3]float64
	var i, j, k int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			for k = 0; k < 3; k++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}
