// SPDX-License-Identifier: MIT

package so3

import "math"

// SmallAngle is the rotation angle below which exponential and logarithm maps
// switch to their first-order series.
const SmallAngle = 1e-12

// Hat returns the skew-symmetric matrix [v]× such that [v]×·x = v × x.
func Hat(v [3]float64) [3][3]float64 {
	return [3][3]float64{
		{0, -v[2], v[1]},
		{v[2], 0, -v[0]},
		{-v[1], v[0], 0},
	}
}

// HatCommute returns -[v]×, so that HatCommute(a)·b = Hat(b)·a = b × a.
func HatCommute(v [3]float64) [3][3]float64 {
	return Hat([3]float64{-v[0], -v[1], -v[2]})
}

// Vee is the inverse of Hat. Off-diagonal pairs are averaged as
// 0.5·(M[i,j] - M[j,i]), so approximately skew-symmetric input is accepted.
func Vee(m [3][3]float64) [3]float64 {
	return [3]float64{
		0.5 * (m[2][1] - m[1][2]),
		0.5 * (m[0][2] - m[2][0]),
		0.5 * (m[1][0] - m[0][1]),
	}
}

// Exp returns the rotation matrix exp([scale·w]×) via the Rodrigues formula.
// MAIN DESCRIPTION:
//   - R = I + (sinθ/θ)·K + ((1-cosθ)/θ²)·K², K = [scale·w]×, θ = ‖scale·w‖.
//
// Behavior highlights:
//   - For θ < SmallAngle the first-order series I + K is returned.
//
// Complexity:
//   - Time O(1), Space O(1).
func Exp(w [3]float64, scale float64) [3][3]float64 {
	phi := [3]float64{w[0] * scale, w[1] * scale, w[2] * scale}
	theta := norm3(phi)
	k := Hat(phi)
	out := identity3()

	if theta < SmallAngle {
		addScaled3(&out, k, 1)

		return out
	}
	addScaled3(&out, k, math.Sin(theta)/theta)
	addScaled3(&out, mul3(k, k), (1-math.Cos(theta))/(theta*theta))

	return out
}

// FromRotationVector returns exp([w]×); ‖w‖ is the angle, w/‖w‖ the axis.
func FromRotationVector(w [3]float64) Rotation {
	return Rotation{m: Exp(w, 1)}
}

// FromAxisAngle returns the rotation by angle about axis. The axis is
// normalised first; a zero-length axis yields the identity.
func FromAxisAngle(axis [3]float64, angle float64) Rotation {
	n := norm3(axis)
	if n == 0 {
		return Identity()
	}
	s := angle / n

	return Rotation{m: Exp([3]float64{axis[0] * s, axis[1] * s, axis[2] * s}, 1)}
}

// RotationVector returns the log map of r as a rotation vector θ·axis with
// θ ∈ [0, π].
// Implementation:
//   - Stage 1: convert to a unit quaternion and flip it into the w ≥ 0 hemisphere.
//   - Stage 2: θ = 2·atan2(‖v‖, w); below SmallAngle use the series 2·v.
func (r Rotation) RotationVector() [3]float64 {
	q := r.quat()
	v := [3]float64{q.Imag, q.Jmag, q.Kmag}
	vn := norm3(v)
	if vn < SmallAngle {
		return [3]float64{2 * v[0], 2 * v[1], 2 * v[2]}
	}
	s := 2 * math.Atan2(vn, q.Real) / vn

	return [3]float64{v[0] * s, v[1] * s, v[2] * s}
}

// AxisAngle returns the unit rotation axis and angle of r. For the identity
// the axis is [0,0,1] and the angle 0.
func (r Rotation) AxisAngle() ([3]float64, float64) {
	w := r.RotationVector()
	theta := norm3(w)
	if theta == 0 {
		return [3]float64{0, 0, 1}, 0
	}

	return [3]float64{w[0] / theta, w[1] / theta, w[2] / theta}, theta
}

// addScaled3 performs dst += alpha·a.
func addScaled3(dst *[3][3]float64, a [3][3]float64, alpha float64) {
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			dst[i][j] += alpha * a[i][j]
		}
	}
}
