// SPDX-License-Identifier: MIT

package so3

import "math"

// FromEulerAngles builds R = Rz(yaw)·Ry(pitch)·Rx(roll): roll about x is
// applied first, yaw about z last.
func FromEulerAngles(roll, pitch, yaw float64) Rotation {
	sr, cr := math.Sincos(roll)
	sp, cp := math.Sincos(pitch)
	sy, cy := math.Sincos(yaw)

	return Rotation{m: [3][3]float64{
		{cy * cp, cy*sp*sr - sy*cr, cy*sp*cr + sy*sr},
		{sy * cp, sy*sp*sr + cy*cr, sy*sp*cr - cy*sr},
		{-sp, cp * sr, cp * cr},
	}}
}

// EulerAngles returns (roll, pitch, yaw) such that FromEulerAngles reproduces r.
// Pitch lies in [-π/2, π/2]. At gimbal lock (|pitch| = π/2) yaw is fixed to 0
// and the whole remaining rotation about the vertical goes into roll.
func (r Rotation) EulerAngles() (roll, pitch, yaw float64) {
	m := r.m
	switch {
	case math.Abs(m[2][0]) < 1:
		yaw = math.Atan2(m[1][0], m[0][0])
		pitch = math.Asin(-m[2][0])
		roll = math.Atan2(m[2][1], m[2][2])
	case m[2][0] <= -1:
		pitch = math.Pi / 2
		roll = math.Atan2(m[0][1], m[0][2])
	default:
		pitch = -math.Pi / 2
		roll = math.Atan2(-m[0][1], -m[0][2])
	}

	return roll, pitch, yaw
}
