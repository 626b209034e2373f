// Package cmtm implements the Composite Motion Transformation Matrix (CMTM):
// a base linear map packaged with an ordered list of its time-derivative
// tangent vectors, expandable into one lower-block-triangular block matrix.
//
// CMTM is generic over the tangent dimension D, which is 3 (rotational, the
// base is an SO(3) rotation matrix) or 6 (spatial, the base is an SE(3)
// adjoint). Rotational and Spatial name the two instantiations.
//
// The block matrix of order k is (D·k)×(D·k), made of k×k blocks of size D×D.
// Block (j, j-i) holds the element matrix M(i):
//
//	M(0) = base
//	M(p) = (1/p) · Σ_{i=0}^{p-1} M(p-1-i) · hat(d[i] / i!)
//
// where d is the derivative list and hat is [ω]× for D = 3, and for D = 6 the
// block operator with [ω]× on both diagonal blocks and [v]× in the lower-left
// block (twists are split [ω, v]). Every block on the main diagonal equals the
// base and every block above it is zero.
//
// Values are immutable. Constructors copy their inputs and accessors return
// copies, so a CMTM may be shared across goroutines and BlockMatrix may be
// called concurrently with different orders.
//
// Basic usage:
//
//	r := so3.FromAxisAngle([3]float64{0, 0, 1}, 0.5)
//	c := cmtm.FromSO3(r, [3]float64{0, 0, 1}, [3]float64{0, 0.1, 0})
//	blk, err := c.BlockMatrix(cmtm.WithOrder(2)) // 6×6
//
// Errors:
//
//   - ErrNonPositiveOrder: a requested order ≤ 0.
//   - ErrOrderExceeded: a requested order greater than Order().
//   - ErrUnsupportedDimension: a run-time dimension other than 3 or 6.
//   - ErrBaseShape: a base matrix that is not D×D.
package cmtm
