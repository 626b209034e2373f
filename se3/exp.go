// SPDX-License-Identifier: MIT

package se3

import (
	"math"

	"github.com/katalvlaran/mathrobo/so3"
)

// Hat maps a twist [ω, v] to the 4×4 se(3) matrix [[ω]× v; 0 0].
func Hat(xi [6]float64) [4][4]float64 {
	w := so3.Hat([3]float64{xi[0], xi[1], xi[2]})
	var out [4][4]float64
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			out[i][j] = w[i][j]
		}
		out[i][3] = xi[3+i]
	}

	return out
}

// Vee is the inverse of Hat. The rotational block goes through so3.Vee, so
// approximately skew-symmetric input is accepted; the bottom row is ignored.
func Vee(m [4][4]float64) [6]float64 {
	var r [3][3]float64
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			r[i][j] = m[i][j]
		}
	}
	w := so3.Vee(r)

	return [6]float64{w[0], w[1], w[2], m[0][3], m[1][3], m[2][3]}
}

// Exp returns the homogeneous matrix of exp(scale·ξ̂).
// MAIN DESCRIPTION:
//   - R = exp([ω]×), t = V·v with
//     V = I + ((1-cosθ)/θ²)·[ω]× + ((θ-sinθ)/θ³)·[ω]×², θ = ‖ω‖.
//
// Behavior highlights:
//   - θ < so3.SmallAngle uses V = I + 0.5·[ω]×.
//
// Complexity:
//   - Time O(1), Space O(1).
func Exp(xi [6]float64, scale float64) [4][4]float64 {
	return ExpTransform(xi, scale).Matrix()
}

// ExpTransform is Exp returning a Transform.
func ExpTransform(xi [6]float64, scale float64) Transform {
	w := [3]float64{xi[0] * scale, xi[1] * scale, xi[2] * scale}
	v := [3]float64{xi[3] * scale, xi[4] * scale, xi[5] * scale}
	theta := math.Sqrt(w[0]*w[0] + w[1]*w[1] + w[2]*w[2])
	k := so3.Hat(w)

	var a, b float64
	if theta < so3.SmallAngle {
		a, b = 0.5, 0
	} else {
		a = (1 - math.Cos(theta)) / (theta * theta)
		b = (theta - math.Sin(theta)) / (theta * theta * theta)
	}
	k2 := mul3(k, k)

	var t [3]float64
	var i, j int
	var vij float64
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			vij = a*k[i][j] + b*k2[i][j]
			if i == j {
				vij++
			}
			t[i] += vij * v[j]
		}
	}

	return Transform{rot: so3.FromMatrix(so3.Exp(w, 1)), trans: t}
}
