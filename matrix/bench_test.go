// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mathrobo/matrix"
)

// benchSizes cover the CMTM block sizes: D·k for D ∈ {3,6} and small k.
var benchSizes = []int{6, 18, 36}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkB bool
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			B := MustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			fillDenseRand(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			fillDenseRand(b, A, 99)
			for i := 0; i < n; i++ {
				MustSet(b, A, i, i, MustAt(b, A, i, i)+float64(n))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Inverse(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAllClose(b *testing.B) {
	b.ReportAllocs()
	A := MustDense(b, 36, 36)
	fillDenseRand(b, A, 5)
	C := A.Copy()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ok, err := matrix.AllClose(A, C, 1e-12, 1e-12)
		if err != nil {
			b.Fatal(err)
		}
		sinkB = ok
	}
}
