// SPDX-License-Identifier: MIT

package so3

import (
	"errors"
	"math"

	"github.com/katalvlaran/mathrobo/matrix"
)

// Rotation is an element of SO(3) stored as a row-major 3×3 matrix.
// The zero value is not a rotation; use Identity.
type Rotation struct {
	m [3][3]float64
}

// Identity returns the identity rotation.
func Identity() Rotation {
	return Rotation{m: identity3()}
}

// FromMatrix wraps m without validation; the caller guarantees m ∈ SO(3).
func FromMatrix(m [3][3]float64) Rotation {
	return Rotation{m: m}
}

// FromMatrixChecked wraps m after verifying RᵀR = I and det R = 1 within tol.
// MAIN DESCRIPTION:
//   - Strict counterpart of FromMatrix, used where matrices come from files
//     or user input rather than from this package's constructors.
//
// Implementation:
//   - Stage 1: lift m into a matrix.Dense and reject NaN/Inf entries.
//   - Stage 2: compare RᵀR with I via matrix.MaxAbsDiff.
//   - Stage 3: compare det R with 1.
//
// Errors:
//   - ErrNotRotation (wrapping matrix.ErrNaNInf for non-finite input).
//
// Complexity:
//   - Time O(1), Space O(1).
func FromMatrixChecked(m [3][3]float64, tol float64) (Rotation, error) {
	const tag = "FromMatrixChecked"
	tol = math.Abs(tol)

	r := Rotation{m: m}
	d := r.Dense()
	if err := matrix.ValidateFinite(d); err != nil {
		return Rotation{}, so3Errorf(tag, errors.Join(ErrNotRotation, err))
	}

	rt, _ := matrix.Transpose(d)
	gram, _ := matrix.Mul(rt, d)
	worst, _ := matrix.MaxAbsDiff(gram, matrix.Must(matrix.NewIdentity(3)))
	if worst > tol {
		return Rotation{}, so3Errorf(tag, ErrNotRotation)
	}
	if math.Abs(det3(m)-1) > tol {
		return Rotation{}, so3Errorf(tag, ErrNotRotation)
	}

	return r, nil
}

// Matrix returns the 3×3 rotation matrix.
func (r Rotation) Matrix() [3][3]float64 { return r.m }

// Dense exports the rotation matrix as a fresh *matrix.Dense.
func (r Rotation) Dense() *matrix.Dense {
	return matrix.Must(matrix.NewFromRows([][]float64{
		r.m[0][:], r.m[1][:], r.m[2][:],
	}))
}

// Compose returns r·o: o is applied first, then r.
func (r Rotation) Compose(o Rotation) Rotation {
	return Rotation{m: mul3(r.m, o.m)}
}

// Inverse returns the transpose of r.
func (r Rotation) Inverse() Rotation {
	return Rotation{m: transpose3(r.m)}
}

// InverseMatrix returns the matrix of r⁻¹.
func (r Rotation) InverseMatrix() [3][3]float64 { return transpose3(r.m) }

// Apply rotates v: R·v.
func (r Rotation) Apply(v [3]float64) [3]float64 { return mulVec3(r.m, v) }

// Adjoint returns the adjoint matrix of r acting on so(3), which for SO(3)
// is the rotation matrix itself.
func (r Rotation) Adjoint() [3][3]float64 { return r.m }

// ApproxEqual reports whether every entry of r and o differs by at most tol.
func (r Rotation) ApproxEqual(o Rotation, tol float64) bool {
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			if math.Abs(r.m[i][j]-o.m[i][j]) > tol {
				return false
			}
		}
	}

	return true
}

// ---------- fixed-size kernels ----------

func identity3() [3][3]float64 {
	return [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

func mul3(a, b [3][3]float64) [3][3]float64 {
	var out [3][3]float64
	var i, j, k int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			for k = 0; k < 3; k++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}

func mulVec3(a [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		a[0][0]*v[0] + a[0][1]*v[1] + a[0][2]*v[2],
		a[1][0]*v[0] + a[1][1]*v[1] + a[1][2]*v[2],
		a[2][0]*v[0] + a[2][1]*v[1] + a[2][2]*v[2],
	}
}

func transpose3(a [3][3]float64) [3][3]float64 {
	var out [3][3]float64
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			out[j][i] = a[i][j]
		}
	}

	return out
}

func det3(a [3][3]float64) float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

func norm3(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}
