package window

import (
	"strconv"
	"testing"
)

func BenchmarkGenerate(b *testing.B) {
	sizes := []int{256, 1024, 4096, 16384}
	for _, n := range sizes {
		b.Run("hann/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Generate(TypeHann, n)
			}
		})
		b.Run("bh4/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Generate(TypeBlackmanHarris4Term, n)
			}
		})
	}
}

func BenchmarkApply(b *testing.B) {
	sizes := []int{256, 1024, 4096, 16384}
	for _, n := range sizes {
		b.Run("hann/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			buf := make([]float64, n)
			for i := 0; i < b.N; i++ {
				Apply(TypeHann, buf)
			}
		})
	}
}
