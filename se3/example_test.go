package se3_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mathrobo/se3"
)

// ExampleTransform_Apply rotates a point about y, then translates it.
func ExampleTransform_Apply() {
	g := se3.FromAxisAngleTranslation([3]float64{0, 1, 0}, math.Pi/2, [3]float64{1, 2, 3})
	p := g.Apply([3]float64{1, 0, 0})
	fmt.Printf("%.3f %.3f %.3f\n", p[0], p[1], p[2])
	// Output:
	// 1.000 2.000 2.000
}

// ExampleExpTransform integrates a pure translational twist.
func ExampleExpTransform() {
	g := se3.ExpTransform([6]float64{0, 0, 0, 1, 2, 3}, 1)
	fmt.Println(g.Translation())
	// Output:
	// [1 2 3]
}
