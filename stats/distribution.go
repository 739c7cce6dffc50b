// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"
)

// Bin is one histogram bucket covering [Lo, Hi); the last bin is closed.
type Bin struct {
	Lo    float64
	Hi    float64
	Count int
}

// Histogram splits the value range into bins equal-width buckets.
//
// Implementation:
//   - Stage 1: validate bins and find min/max.
//   - Stage 2: when all values are equal, widen the range to
//     [v-0.5, v+0.5] so the bins have non-zero width.
//   - Stage 3: assign each value to floor((x-min)/width), clamping the
//     maximum into the last bin.
//
// NaN and infinite values are skipped.
func Histogram[T Number](xs []T, bins int) ([]Bin, error) {
	if bins < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadBins, bins)
	}

	// Stage 1: range over the finite values.
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		f := float64(x)
		if !finite(f) {
			continue
		}
		lo = math.Min(lo, f)
		hi = math.Max(hi, f)
	}
	if math.IsInf(lo, 1) {
		return nil, ErrEmpty
	}

	// Stage 2: degenerate range.
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	width := (hi - lo) / float64(bins)

	out := make([]Bin, bins)
	for i := range out {
		out[i].Lo = lo + float64(i)*width
		out[i].Hi = lo + float64(i+1)*width
	}
	out[bins-1].Hi = hi

	// Stage 3: count.
	for _, x := range xs {
		f := float64(x)
		if !finite(f) {
			continue
		}
		i := int((f - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		out[i].Count++
	}
	return out, nil
}

// ZScores standardises xs with the population mean and standard
// deviation. A constant series yields all zeros.
func ZScores[T Number](xs []T) ([]float64, error) {
	if len(xs) == 0 {
		return nil, ErrEmpty
	}
	mean := Sum(xs) / float64(len(xs))
	sd, _ := StdDev(xs, Population)

	out := make([]float64, len(xs))
	if sd == 0 {
		return out, nil
	}
	inv := 1 / sd
	for i, x := range xs {
		out[i] = (float64(x) - mean) * inv
	}
	return out, nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
