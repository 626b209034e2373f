// SPDX-License-Identifier: MIT

package cmtm

import (
	"fmt"

	"github.com/katalvlaran/mathrobo/matrix"
)

const (
	opBlockMatrix     = "BlockMatrix"
	opElementMatrices = "ElementMatrices"
)

// resolveOrder turns the requested order into k ∈ [1, Order()].
func (c CMTM[V]) resolveOrder(tag string, o Options) (int, error) {
	if !o.orderSet {
		return c.Order(), nil
	}
	if o.order <= 0 {
		return 0, fmt.Errorf("%s(order=%d): %w", tag, o.order, ErrNonPositiveOrder)
	}
	if o.order > c.Order() {
		return 0, fmt.Errorf("%s(order=%d, max=%d): %w", tag, o.order, c.Order(), ErrOrderExceeded)
	}

	return o.order, nil
}

// BlockMatrix builds the (D·k)×(D·k) lower-block-triangular block matrix.
// MAIN DESCRIPTION:
//   - Block (j, j-i) = M(i) for 0 ≤ i ≤ j < k; blocks above the diagonal are zero.
//   - k is Order() unless WithOrder is given.
//
// Implementation:
//   - Stage 1: resolve k (ErrNonPositiveOrder / ErrOrderExceeded).
//   - Stage 2: compute M(0..k-1) with the iterative table of elementTable.
//   - Stage 3: copy M(i) onto each block of the i-th descending block diagonal.
//
// Errors:
//   - ErrNonPositiveOrder, ErrOrderExceeded.
//
// Complexity:
//   - Time O(k²·D³) for the table plus O(k²·D²) assembly, Space O(k²·D²).
func (c CMTM[V]) BlockMatrix(opts ...Option) (*matrix.Dense, error) {
	k, err := c.resolveOrder(opBlockMatrix, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}
	d := c.Dim()
	elems := c.elementTable(k)

	out := matrix.Must(matrix.NewDense(d*k, d*k))
	var i, j int
	for j = 0; j < k; j++ {
		for i = 0; i <= j; i++ {
			if err = out.SetBlock(j*d, (j-i)*d, elems[i]); err != nil {
				return nil, cmtmErrorf(opBlockMatrix, err)
			}
		}
	}

	return out, nil
}

// ElementMatrices returns M(0), …, M(k-1): the first column of blocks of the
// order-k block matrix. k defaults to Order() and is validated like BlockMatrix.
func (c CMTM[V]) ElementMatrices(opts ...Option) ([]*matrix.Dense, error) {
	k, err := c.resolveOrder(opElementMatrices, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}
	elems := c.elementTable(k)
	out := make([]*matrix.Dense, k)
	for i, e := range elems {
		out[i] = e.Copy()
	}

	return out, nil
}

// elementTable computes M(0..k-1) bottom-up.
// MAIN DESCRIPTION:
//   - M(0) = base; M(p) = (1/p)·Σ_{i<p} M(p-1-i)·H(i), H(i) = hat(d[i]/i!).
//
// Implementation:
//   - Stage 1: precompute H(0..k-2), folding 1/i! into a running factor.
//   - Stage 2: fill the table in increasing p; each entry reads only lower ones.
//
// Requires 1 ≤ k ≤ Order(). The returned matrices must not be mutated
// (M(0) aliases the stored base).
func (c CMTM[V]) elementTable(k int) []*matrix.Dense {
	d := c.Dim()
	hats := make([]*matrix.Dense, k-1)
	invFact := 1.0 // 1/i!
	var i int
	for i = 0; i < k-1; i++ {
		if i > 0 {
			invFact /= float64(i)
		}
		hats[i] = scaled(hatOf(c.derivatives[i]), invFact)
	}

	table := make([]*matrix.Dense, k)
	table[0] = c.baseDense()
	var p int
	for p = 1; p < k; p++ {
		acc := matrix.Must(matrix.NewDense(d, d))
		for i = 0; i < p; i++ {
			acc = mustAdd(acc, mustMul(table[p-1-i], hats[i]))
		}
		table[p] = scaled(acc, 1/float64(p))
	}

	return table
}

// elementRecursive computes M(p) straight from the definition, without
// sharing subresults. It is exponential in p and exists to cross-check
// elementTable.
func (c CMTM[V]) elementRecursive(p int) *matrix.Dense {
	if p == 0 {
		return c.baseDense().Copy()
	}
	d := c.Dim()
	acc := matrix.Must(matrix.NewDense(d, d))
	var i int
	for i = 0; i < p; i++ {
		h := scaled(hatOf(c.derivatives[i]), 1/factorial(i))
		acc = mustAdd(acc, mustMul(c.elementRecursive(p-1-i), h))
	}

	return scaled(acc, 1/float64(p))
}

// factorial returns n! as a float64; n is bounded by the order.
func factorial(n int) float64 {
	f := 1.0
	var i int
	for i = 2; i <= n; i++ {
		f *= float64(i)
	}

	return f
}

func scaled(m *matrix.Dense, alpha float64) *matrix.Dense {
	s, err := matrix.Scale(m, alpha)
	if err != nil {
		panic(err)
	}

	return s.(*matrix.Dense)
}

func mustAdd(a, b *matrix.Dense) *matrix.Dense {
	s, err := matrix.Add(a, b)
	if err != nil {
		panic(err)
	}

	return s.(*matrix.Dense)
}
