package stats_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvkit/stats"
)

func benchData(n int) []float64 {
	r := rand.New(rand.NewSource(1))
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = r.NormFloat64()
	}
	return xs
}

func BenchmarkPercentile(b *testing.B) {
	xs := benchData(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = stats.Percentile(xs, 95)
	}
}

func BenchmarkCorrelationMatrix(b *testing.B) {
	cols := make([][]float64, 8)
	for j := range cols {
		cols[j] = benchData(1_000)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _, _ = stats.CorrelationMatrix(cols)
	}
}

func BenchmarkDTW(b *testing.B) {
	x, y := benchData(512), benchData(480)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = stats.DTW(x, y, stats.WarpOptions{Window: 32})
	}
}
