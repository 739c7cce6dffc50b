package arr_test

import (
	"testing"

	"github.com/katalvlaran/lvkit/arr"
)

// BenchmarkSample measures a 10-element sample from a 10k slice.
func BenchmarkSample(b *testing.B) {
	s := make([]int, 10000)
	for i := range s {
		s[i] = i
	}
	opt := arr.WithSeed(1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arr.Sample(s, 10, opt)
	}
}

// BenchmarkDot flattens a three-level map.
func BenchmarkDot(b *testing.B) {
	m := map[string]any{
		"a": map[string]any{"b": map[string]any{"c": 1, "d": 2}, "e": 3},
		"f": 4,
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = arr.Dot(m)
	}
}
