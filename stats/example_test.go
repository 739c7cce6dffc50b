package stats_test

import (
	"fmt"

	"github.com/katalvlaran/lvkit/stats"
)

func ExampleHistogram() {
	latencies := []float64{12, 15, 11, 40, 13, 14, 90, 16}
	bins, _ := stats.Histogram(latencies, 4)
	for _, b := range bins {
		fmt.Printf("[%5.1f, %5.1f) %d\n", b.Lo, b.Hi, b.Count)
	}
	// Output:
	// [ 11.0,  30.8) 6
	// [ 30.8,  50.5) 1
	// [ 50.5,  70.2) 0
	// [ 70.2,  90.0) 1
}
