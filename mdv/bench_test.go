// Package mdv_test provides benchmarks for the convolution primitives
// over a fixed, deterministic sweep of input sizes.
package mdv_test

import (
	"fmt"
	"testing"

	"github.com/isocorr-go/isocorr/mdv"
)

var benchLengths = []int{4, 16, 64}

var sinkV []float64

func BenchmarkConvolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchLengths {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			u := make([]float64, n)
			v := make([]float64, n)
			for i := range u {
				u[i] = 1.0 / float64(n)
				v[i] = 1.0 / float64(n)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkV = mdv.Convolve(u, v)
			}
		})
	}
}

func BenchmarkConvolveRepeat(b *testing.B) {
	b.ReportAllocs()
	factor := []float64{0.9893, 0.0107}
	for _, n := range []int{4, 16, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkV = mdv.ConvolveRepeat([]float64{1.0}, factor, n)
			}
		})
	}
}
