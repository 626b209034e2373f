package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/mathrobo/matrix"
)

// ExampleMul composes two planar rotations embedded in 3×3 matrices.
func ExampleMul() {
	r := matrix.Must(matrix.NewFromRows([][]float64{
		{0, -1, 0},
		{1, 0, 0},
		{0, 0, 1},
	}))
	r2, _ := matrix.Mul(r, r)
	fmt.Print(r2)
	// Output:
	// [-1, 0, 0]
	// [0, -1, 0]
	// [0, 0, 1]
}

// ExampleDense_SetBlock assembles a 6×6 block matrix from 3×3 pieces.
func ExampleDense_SetBlock() {
	big := matrix.Must(matrix.NewDense(6, 6))
	id := matrix.Must(matrix.NewIdentity(3))
	_ = big.SetBlock(0, 0, id)
	_ = big.SetBlock(3, 3, id)
	_ = big.SetBlock(3, 0, id)

	fmt.Println(matrix.ValidateBlockLowerTriangular(big, 3, 0) == nil)
	// Output:
	// true
}

// ExampleInverse inverts a matrix that needs row pivoting.
func ExampleInverse() {
	a := matrix.Must(matrix.NewFromRows([][]float64{
		{0, 2},
		{4, 0},
	}))
	inv, _ := matrix.Inverse(a)
	fmt.Print(inv)
	// Output:
	// [0, 0.25]
	// [0.5, 0]
}
