// Package matrix is the small linear-algebra substrate underneath the
// motion-group packages (so3, se3, cmtm).
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     return sentinel errors instead of panicking.
//   - Kernels: Add, Sub, Mul, Scale, Transpose, MatVec and Inverse, each
//     allocating a fresh result and never mutating its operands.
//   - Builders: NewIdentity, NewFromRows and block helpers (Block, SetBlock)
//     used to assemble the CMTM block matrix from D×D element matrices.
//   - Validators and AllClose for shape checks and tolerance comparisons.
//
// Every kernel has a *Dense fast path over the flat backing slice and a
// generic At/Set fallback for other Matrix implementations.
//
// See the examples in this package and in cmtm for usage patterns.
package matrix
