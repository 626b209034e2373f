package cmtm

import "github.com/katalvlaran/mathrobo/matrix"

// ElementRecursive exposes the direct recursion for cross-checking.
func (c CMTM[V]) ElementRecursive(p int) *matrix.Dense { return c.elementRecursive(p) }

// Factorial exposes factorial for tests.
var Factorial = factorial
