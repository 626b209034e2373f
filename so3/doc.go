// Package so3 implements the rotation group SO(3) as an immutable value type.
//
// A Rotation wraps one 3×3 orthonormal matrix with determinant +1. Every
// operation returns a new value; nothing is shared or mutated, so Rotations
// may be used freely across goroutines.
//
// The package provides:
//
//   - Constructors: Identity, FromAxisAngle, FromQuaternion, FromEulerAngles,
//     FromRotationVector, FromMatrix (trusted) and FromMatrixChecked (validated).
//   - Group operations: Compose (a·b, b applied first), Inverse (transpose), Apply.
//   - so(3) maps: Hat, HatCommute, Vee and the exponential Exp.
//   - Conversions: Quaternion, EulerAngles (R = Rz(yaw)·Ry(pitch)·Rx(roll)),
//     RotationVector (log map), Matrix and Dense.
//
// Degenerate inputs are handled by defined fallbacks instead of errors: a
// zero-length axis or a zero quaternion yields the identity, and angles below
// 1e-12 switch to first-order series.
//
// Public surfaces take and return plain arrays ([3]float64, [4]float64,
// [3][3]float64) so callers never hold references into internal state.
package so3
