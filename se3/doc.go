// Package se3 implements rigid transforms SE(3) as immutable values pairing
// an so3.Rotation with a translation vector.
//
// Twists are ordered [ω, v]: angular part first, linear part second. That
// ordering fixes the layout of Hat (ω in the top-left block, v in the last
// column) and of the 6×6 Adjoint (R on both diagonal blocks, [t]×·R in the
// lower-left block, zeros in the upper-right).
//
// Exp is closed form. Below a rotation angle of 1e-12 the coupling matrix V
// falls back to the series I + 0.5·[ω]× so no division by θ² or θ³ occurs.
//
// Matrix() always returns a homogeneous 4×4 matrix with bottom row [0,0,0,1].
package se3
