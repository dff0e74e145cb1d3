package thd

import (
	"math"
	"strconv"
	"testing"

	"github.com/cwbudde/algo-constmath/approx"
)

func BenchmarkAnalyze(b *testing.B) {
	sizes := []int{1024, 4096, 16384}
	for _, size := range sizes {
		b.Run("fft_"+strconv.Itoa(size), func(b *testing.B) {
			a, err := NewAnalyzer(Config{Size: size})
			if err != nil {
				b.Fatal(err)
			}

			signal, err := Generate(math.Sin, a.Config())
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := a.Analyze(signal); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkGenerate(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := Generate(approx.Sin[float64], Config{}); err != nil {
			b.Fatal(err)
		}
	}
}
