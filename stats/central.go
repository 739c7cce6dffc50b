// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/constraints"
)

// Number is any integer or float type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Kind selects the variance denominator.
type Kind int

const (
	// Population divides by n.
	Population Kind = iota
	// Sample divides by n-1 (Bessel's correction).
	Sample
)

// Sum adds xs as float64. An empty slice sums to 0.
func Sum[T Number](xs []T) float64 {
	var s float64
	for _, x := range xs {
		s += float64(x)
	}
	return s
}

// Mean returns the arithmetic mean.
func Mean[T Number](xs []T) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}
	return Sum(xs) / float64(len(xs)), nil
}

// sorted returns an ascending float64 copy of xs.
func sorted[T Number](xs []T) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	sort.Float64s(out)
	return out
}

// Median returns the middle value, or the mean of the two middle values
// for even lengths.
func Median[T Number](xs []T) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}
	s := sorted(xs)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid], nil
	}
	return (s[mid-1] + s[mid]) / 2, nil
}

// Mode returns every most frequent value in ascending order. When all
// values are distinct, every value is a mode.
func Mode[T Number](xs []T) ([]T, error) {
	if len(xs) == 0 {
		return nil, ErrEmpty
	}
	freq := Frequencies(xs)
	best := 0
	for _, n := range freq {
		if n > best {
			best = n
		}
	}
	modes := make([]T, 0, 1)
	for v, n := range freq {
		if n == best {
			modes = append(modes, v)
		}
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes, nil
}

// Frequencies counts occurrences of each value.
func Frequencies[T comparable](xs []T) map[T]int {
	out := make(map[T]int, len(xs))
	for _, x := range xs {
		out[x]++
	}
	return out
}

// Range returns the minimum and maximum.
func Range[T Number](xs []T) (lo, hi T, err error) {
	if len(xs) == 0 {
		return lo, hi, ErrEmpty
	}
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi, nil
}

// Variance returns the population or sample variance. It uses a
// two-pass algorithm: mean first, then squared deviations.
func Variance[T Number](xs []T, kind Kind) (float64, error) {
	n := len(xs)
	if n == 0 {
		return 0, ErrEmpty
	}
	if kind == Sample && n < 2 {
		return 0, fmt.Errorf("%w: sample variance of %d value", ErrTooFew, n)
	}
	mean := Sum(xs) / float64(n)
	var ss float64
	for _, x := range xs {
		d := float64(x) - mean
		ss += d * d
	}
	if kind == Sample {
		return ss / float64(n-1), nil
	}
	return ss / float64(n), nil
}

// StdDev is the square root of Variance.
func StdDev[T Number](xs []T, kind Kind) (float64, error) {
	v, err := Variance(xs, kind)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Percentile returns the p-th percentile (0..100) with linear
// interpolation between closest ranks: rank = p/100 * (n-1).
func Percentile[T Number](xs []T, p float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}
	if math.IsNaN(p) || p < 0 || p > 100 {
		return 0, fmt.Errorf("%w: %v", ErrPercentile, p)
	}
	return percentileSorted(sorted(xs), p), nil
}

func percentileSorted(s []float64, p float64) float64 {
	rank := p / 100 * float64(len(s)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return s[lo]
	}
	return s[lo] + (s[hi]-s[lo])*(rank-float64(lo))
}

// Quartiles returns the 25th, 50th and 75th percentiles.
func Quartiles[T Number](xs []T) (q1, q2, q3 float64, err error) {
	if len(xs) == 0 {
		return 0, 0, 0, ErrEmpty
	}
	s := sorted(xs)
	return percentileSorted(s, 25), percentileSorted(s, 50), percentileSorted(s, 75), nil
}
