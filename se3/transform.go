// SPDX-License-Identifier: MIT

package se3

import (
	"math"

	"github.com/katalvlaran/mathrobo/matrix"
	"github.com/katalvlaran/mathrobo/so3"
)

// Transform is a rigid motion x ↦ R·x + t.
type Transform struct {
	rot   so3.Rotation
	trans [3]float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{rot: so3.Identity()}
}

// FromParts pairs a rotation with a translation.
func FromParts(r so3.Rotation, t [3]float64) Transform {
	return Transform{rot: r, trans: t}
}

// FromAxisAngleTranslation rotates by angle about axis (zero axis ⇒ no
// rotation), then translates by t.
func FromAxisAngleTranslation(axis [3]float64, angle float64, t [3]float64) Transform {
	return Transform{rot: so3.FromAxisAngle(axis, angle), trans: t}
}

// FromMatrix extracts the rotation block and translation column of a
// homogeneous matrix. The rotation block is trusted; the bottom row is ignored.
func FromMatrix(m [4][4]float64) Transform {
	var r [3][3]float64
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			r[i][j] = m[i][j]
		}
	}

	return Transform{rot: so3.FromMatrix(r), trans: [3]float64{m[0][3], m[1][3], m[2][3]}}
}

// Rotation returns the rotation part.
func (g Transform) Rotation() so3.Rotation { return g.rot }

// Translation returns the translation part.
func (g Transform) Translation() [3]float64 { return g.trans }

// Matrix returns the homogeneous 4×4 matrix [R t; 0 1].
func (g Transform) Matrix() [4][4]float64 {
	r := g.rot.Matrix()
	var out [4][4]float64
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			out[i][j] = r[i][j]
		}
		out[i][3] = g.trans[i]
	}
	out[3][3] = 1

	return out
}

// Dense exports Matrix() as a fresh *matrix.Dense.
func (g Transform) Dense() *matrix.Dense {
	m := g.Matrix()

	return matrix.Must(matrix.NewFromRows([][]float64{m[0][:], m[1][:], m[2][:], m[3][:]}))
}

// Compose returns g·o: o is applied first. R = Rg·Ro, t = tg + Rg·to.
func (g Transform) Compose(o Transform) Transform {
	rt := g.rot.Apply(o.trans)

	return Transform{
		rot:   g.rot.Compose(o.rot),
		trans: [3]float64{g.trans[0] + rt[0], g.trans[1] + rt[1], g.trans[2] + rt[2]},
	}
}

// Inverse returns (Rᵀ, -Rᵀ·t).
func (g Transform) Inverse() Transform {
	inv := g.rot.Inverse()
	t := inv.Apply(g.trans)

	return Transform{rot: inv, trans: [3]float64{-t[0], -t[1], -t[2]}}
}

// Apply maps a point: R·p + t.
func (g Transform) Apply(p [3]float64) [3]float64 {
	q := g.rot.Apply(p)

	return [3]float64{q[0] + g.trans[0], q[1] + g.trans[1], q[2] + g.trans[2]}
}

// ApproxEqual compares rotation and translation entry-wise within tol.
func (g Transform) ApproxEqual(o Transform, tol float64) bool {
	if !g.rot.ApproxEqual(o.rot, tol) {
		return false
	}
	var i int
	for i = 0; i < 3; i++ {
		if math.Abs(g.trans[i]-o.trans[i]) > tol {
			return false
		}
	}

	return true
}
