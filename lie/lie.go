// SPDX-License-Identifier: MIT

package lie

// Composer is any value that composes with its own type.
type Composer[G any] interface {
	Compose(G) G
}

// Group is a Composer with inverses.
type Group[G any] interface {
	Composer[G]
	Inverse() G
}

// Mul returns a·b (b applied first).
func Mul[G Composer[G]](a, b G) G {
	return a.Compose(b)
}

// Chain composes gs left to right starting from identity:
// identity·gs[0]·gs[1]·…, so the last element is applied first.
// An empty chain returns identity.
// Complexity: O(len(gs)) compositions.
func Chain[G Composer[G]](identity G, gs ...G) G {
	acc := identity
	for _, g := range gs {
		acc = acc.Compose(g)
	}

	return acc
}

// Conjugate returns g·h·g⁻¹.
func Conjugate[G Group[G]](g, h G) G {
	return g.Compose(h).Compose(g.Inverse())
}
