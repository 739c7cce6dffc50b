package arr

import (
	"fmt"
	"slices"
)

// Shuffle returns a shuffled copy of s. The input is never modified.
func Shuffle[T any](s []T, opts ...Option) []T {
	out := slices.Clone(s)
	shuffleInPlace(out, resolve(opts))
	return out
}

// Sample returns k distinct elements of s chosen uniformly at random.
// k == 0 yields an empty slice; k > len(s) or k < 0 yields ErrSampleSize.
func Sample[T any](s []T, k int, opts ...Option) ([]T, error) {
	if k < 0 || k > len(s) {
		return nil, fmt.Errorf("%w: want %d of %d", ErrSampleSize, k, len(s))
	}
	out := slices.Clone(s)
	partialShuffle(out, k, resolve(opts))
	return out[:k:k], nil
}

// Random returns one element of s chosen uniformly at random.
func Random[T any](s []T, opts ...Option) (T, error) {
	var zero T
	if len(s) == 0 {
		return zero, ErrEmpty
	}
	return s[resolve(opts).Intn(len(s))], nil
}

// WeightedPick returns one item with probability weights[i] / Σweights.
// Weights must be non-negative, same length as items, and not all zero.
func WeightedPick[T any, W Number](items []T, weights []W, opts ...Option) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmpty
	}
	if len(weights) != len(items) {
		return zero, fmt.Errorf("%w: %d weights for %d items", ErrBadWeights, len(weights), len(items))
	}

	var total float64
	for i, w := range weights {
		if w < 0 {
			return zero, fmt.Errorf("%w: negative weight at %d", ErrBadWeights, i)
		}
		total += float64(w)
	}
	if total == 0 {
		return zero, fmt.Errorf("%w: all weights are zero", ErrBadWeights)
	}

	target := resolve(opts).Float64() * total
	var acc float64
	for i, w := range weights {
		acc += float64(w)
		if target < acc {
			return items[i], nil
		}
	}
	// Float rounding can leave target == total; fall back to the last
	// item carrying weight.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return items[i], nil
		}
	}
	return zero, ErrBadWeights
}
