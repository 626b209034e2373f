// SPDX-License-Identifier: MIT

package so3

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// FromQuaternion builds a rotation from q = [w, x, y, z]. The quaternion is
// normalised first; the zero quaternion is treated as the identity.
func FromQuaternion(q [4]float64) Rotation {
	n := quat.Number{Real: q[0], Imag: q[1], Jmag: q[2], Kmag: q[3]}
	norm := quat.Abs(n)
	if norm == 0 {
		return Identity()
	}

	return Rotation{m: unitQuatToMatrix(quat.Scale(1/norm, n))}
}

// Quaternion returns r as a unit quaternion [w, x, y, z] with w ≥ 0.
func (r Rotation) Quaternion() [4]float64 {
	q := r.quat()

	return [4]float64{q.Real, q.Imag, q.Jmag, q.Kmag}
}

// QuaternionFromMatrix converts a rotation matrix to [w, x, y, z] without
// building a Rotation first.
func QuaternionFromMatrix(m [3][3]float64) [4]float64 {
	return FromMatrix(m).Quaternion()
}

// quat converts r.m to a unit quaternion in the w ≥ 0 hemisphere.
// MAIN DESCRIPTION:
//   - Shepperd's method: branch on the largest of (trace, m00, m11, m22) so the
//     square root argument stays well away from zero.
//
// Complexity:
//   - Time O(1), Space O(1).
func (r Rotation) quat() quat.Number {
	m := r.m
	var q quat.Number
	tr := m[0][0] + m[1][1] + m[2][2]
	switch {
	case tr > 0:
		s := 2 * math.Sqrt(tr+1)
		q = quat.Number{Real: 0.25 * s, Imag: (m[2][1] - m[1][2]) / s, Jmag: (m[0][2] - m[2][0]) / s, Kmag: (m[1][0] - m[0][1]) / s}
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := 2 * math.Sqrt(1+m[0][0]-m[1][1]-m[2][2])
		q = quat.Number{Real: (m[2][1] - m[1][2]) / s, Imag: 0.25 * s, Jmag: (m[0][1] + m[1][0]) / s, Kmag: (m[0][2] + m[2][0]) / s}
	case m[1][1] > m[2][2]:
		s := 2 * math.Sqrt(1+m[1][1]-m[0][0]-m[2][2])
		q = quat.Number{Real: (m[0][2] - m[2][0]) / s, Imag: (m[0][1] + m[1][0]) / s, Jmag: 0.25 * s, Kmag: (m[1][2] + m[2][1]) / s}
	default:
		s := 2 * math.Sqrt(1+m[2][2]-m[0][0]-m[1][1])
		q = quat.Number{Real: (m[1][0] - m[0][1]) / s, Imag: (m[0][2] + m[2][0]) / s, Jmag: (m[1][2] + m[2][1]) / s, Kmag: 0.25 * s}
	}

	// Remove drift from a not-quite-orthonormal input.
	if n := quat.Abs(q); n > 0 {
		q = quat.Scale(1/n, q)
	}
	if q.Real < 0 {
		q = quat.Scale(-1, q)
	}

	return q
}

// unitQuatToMatrix expands a unit quaternion into its rotation matrix.
func unitQuatToMatrix(q quat.Number) [3][3]float64 {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	return [3][3]float64{
		{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y)},
	}
}
