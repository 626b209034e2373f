// Package mathrobo is your toolbox for rigid-body motion: 3-D rotations,
// rigid transforms, and composite motion transformation matrices (CMTMs)
// that carry a motion together with its time derivatives.
//
// 🚀 What is mathrobo?
//
//	A small, pure-Go numeric library that brings together:
//		• so3/    – rotation matrices, axis-angle, quaternions, Euler angles, exp/log
//		• se3/    – rigid transforms, 4×4 homogeneous form, 6×6 adjoint, twist exp
//		• lie/    – generic group helpers (Mul, Chain, Conjugate) over both
//		• cmtm/   – the CMTM engine: hat operators, element matrices, block matrix
//		• matrix/ – the dense matrix kernel everything above is built on
//
// ✨ Why choose mathrobo?
//
//   - Value types – Rotation and Transform are comparable structs, safe to copy
//   - Explicit errors – sentinel errors, always matched with errors.Is
//   - Generic CMTM – one implementation for ω ∈ ℝ³ and twists [ω, v] ∈ ℝ⁶
//
// Quick example:
//
//	g := se3.FromAxisAngleTranslation([3]float64{0, 1, 0}, math.Pi/2, [3]float64{1, 2, 3})
//	c := cmtm.FromSE3(g, [6]float64{0, 0, 1, 0.1, 0, 0})
//	bm, _ := c.BlockMatrix() // 12×12, lower-block-triangular
//
// The mathrobo command (cmd/mathrobo) reads TOML scenarios and prints block
// matrices, applies them to vectors, and times the kernels.
//
//	go install github.com/katalvlaran/mathrobo/cmd/mathrobo@latest
package mathrobo
