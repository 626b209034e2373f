// SPDX-License-Identifier: MIT

package cmtm

import (
	"fmt"

	"github.com/katalvlaran/mathrobo/matrix"
	"github.com/katalvlaran/mathrobo/se3"
	"github.com/katalvlaran/mathrobo/so3"
)

// Vector is the set of supported tangent vectors: ω ∈ ℝ³ or a twist [ω, v] ∈ ℝ⁶.
type Vector interface {
	[3]float64 | [6]float64
}

// CMTM is a base D×D matrix with an ordered list of derivative vectors,
// D = len(V). Index 0 of the list is the first derivative.
//
// The zero value is the identity of order 1.
type CMTM[V Vector] struct {
	base        *matrix.Dense // D×D, owned; nil means identity
	derivatives []V           // owned copy
}

// Rotational is the CMTM over SO(3) rotation matrices.
type Rotational = CMTM[[3]float64]

// Spatial is the CMTM over SE(3) adjoint matrices.
type Spatial = CMTM[[6]float64]

// Identity returns the order-1 CMTM with an identity base.
func Identity[V Vector]() CMTM[V] {
	return CMTM[V]{base: identityOf[V]()}
}

// New builds a CMTM from a D×D base and derivatives d[0], d[1], ….
// Both the base and the derivatives are copied.
//
// Errors:
//   - ErrBaseShape when base is nil or not D×D.
func New[V Vector](base matrix.Matrix, derivatives ...V) (CMTM[V], error) {
	const tag = "New"
	d := dimOf[V]()
	if matrix.ValidateNotNil(base) != nil {
		return CMTM[V]{}, cmtmErrorf(tag, fmt.Errorf("%w: %w", ErrBaseShape, matrix.ErrNilMatrix))
	}
	if base.Rows() != d || base.Cols() != d {
		return CMTM[V]{}, cmtmErrorf(tag, fmt.Errorf("%w: got %d×%d, want %d×%d", ErrBaseShape, base.Rows(), base.Cols(), d, d))
	}

	b := matrix.Must(matrix.NewDense(d, d))
	if err := b.SetBlock(0, 0, base); err != nil {
		return CMTM[V]{}, cmtmErrorf(tag, err)
	}

	return CMTM[V]{base: b, derivatives: cloneVectors(derivatives)}, nil
}

// FromSO3 builds a rotational CMTM whose base is the rotation matrix of r.
func FromSO3(r so3.Rotation, derivatives ...[3]float64) Rotational {
	return Rotational{base: r.Dense(), derivatives: cloneVectors(derivatives)}
}

// FromSE3 builds a spatial CMTM whose base is the 6×6 adjoint of g.
func FromSE3(g se3.Transform, derivatives ...[6]float64) Spatial {
	return Spatial{base: g.AdjointDense(), derivatives: cloneVectors(derivatives)}
}

// Order returns len(Derivatives()) + 1.
func (c CMTM[V]) Order() int { return len(c.derivatives) + 1 }

// Dim returns the tangent dimension D (3 or 6).
func (c CMTM[V]) Dim() int { return dimOf[V]() }

// Base returns a copy of the D×D base matrix.
func (c CMTM[V]) Base() *matrix.Dense { return c.baseDense().Copy() }

// Matrix returns the base matrix as plain rows.
func (c CMTM[V]) Matrix() [][]float64 { return c.baseDense().RawRows() }

// Derivatives returns a copy of the derivative list.
func (c CMTM[V]) Derivatives() []V { return cloneVectors(c.derivatives) }

// Apply returns base·v. Derivatives are ignored: this is the first-order
// action of the CMTM on a tangent vector.
func (c CMTM[V]) Apply(v V) V {
	y, _ := matrix.MatVec(c.baseDense(), toSlice(v))

	return fromSlice[V](y)
}

// ApplyOmega applies a rotational CMTM to an angular velocity.
func ApplyOmega(c Rotational, omega [3]float64) [3]float64 { return c.Apply(omega) }

// ApplyTwist applies a spatial CMTM to a twist [ω, v]. For a CMTM built by
// FromSE3(g) this equals g.Adjoint()·twist.
func ApplyTwist(c Spatial, twist [6]float64) [6]float64 { return c.Apply(twist) }

// Compose returns the CMTM with base c.base·o.base and derivative list
// c.d[i] + o.d[i] summed over max(len) positions, the shorter list padded
// with zero vectors. The result's order is the larger input order.
func (c CMTM[V]) Compose(o CMTM[V]) CMTM[V] {
	n := max(len(c.derivatives), len(o.derivatives))
	out := make([]V, n)
	var i, j int
	for i = 0; i < n; i++ {
		if i < len(c.derivatives) {
			out[i] = c.derivatives[i]
		}
		if i < len(o.derivatives) {
			for j = 0; j < len(out[i]); j++ {
				out[i][j] += o.derivatives[i][j]
			}
		}
	}
	if n == 0 {
		out = nil
	}

	return CMTM[V]{base: mustMul(c.baseDense(), o.baseDense()), derivatives: out}
}

// baseDense returns the stored base, or the identity for the zero value.
// The result must not be mutated.
func (c CMTM[V]) baseDense() *matrix.Dense {
	if c.base == nil {
		return identityOf[V]()
	}

	return c.base
}

// ---------- generic helpers ----------

func dimOf[V Vector]() int {
	var v V

	return len(v)
}

func identityOf[V Vector]() *matrix.Dense {
	return matrix.Must(matrix.NewIdentity(dimOf[V]()))
}

func toSlice[V Vector](v V) []float64 {
	out := make([]float64, len(v))
	var i int
	for i = 0; i < len(v); i++ {
		out[i] = v[i]
	}

	return out
}

func fromSlice[V Vector](s []float64) V {
	var v V
	var i int
	for i = 0; i < len(v); i++ {
		v[i] = s[i]
	}

	return v
}

func cloneVectors[V Vector](vs []V) []V {
	if len(vs) == 0 {
		return nil
	}
	out := make([]V, len(vs))
	copy(out, vs)

	return out
}

// mustMul multiplies two D×D matrices; shapes are guaranteed by construction.
func mustMul(a, b *matrix.Dense) *matrix.Dense {
	p, err := matrix.Mul(a, b)
	if err != nil {
		panic(err)
	}

	return p.(*matrix.Dense)
}
