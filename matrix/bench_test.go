// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/gomatrix/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{32, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense[float64]
	sinkF float64
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randFloats(b, n, n, 1337)
			B := randFloats(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randFloats(b, n, n, 11)
			B := randFloats(b, n, n, 22)
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

func BenchmarkMulFallback(b *testing.B) {
	b.ReportAllocs()
	const n = 64
	A := randFloats(b, n, n, 5)
	B := randFloats(b, n, n, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := matrix.Mul[float64](hide[float64]{A}, B)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randFloats(b, n, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = A.T()
			}
		})
	}
}

func BenchmarkTrace(b *testing.B) {
	A := randFloats(b, 256, 256, 7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := A.Trace()
		if err != nil {
			b.Fatal(err)
		}
		sinkF = v
	}
}
