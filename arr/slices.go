package arr

import (
	"fmt"
	"maps"
	"slices"

	"golang.org/x/exp/constraints"
)

// GroupBy buckets s by key(x). Bucket order follows input order.
func GroupBy[T any, K comparable](s []T, key func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, x := range s {
		k := key(x)
		out[k] = append(out[k], x)
	}
	return out
}

// Unique returns s without duplicates, keeping first occurrences.
func Unique[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, x := range s {
		if _, dup := seen[x]; dup {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}

// Chunk splits s into consecutive pieces of at most size elements.
// size must be positive.
func Chunk[T any](s []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: chunk size %d", ErrSampleSize, size)
	}
	out := make([][]T, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		end := min(start+size, len(s))
		out = append(out, s[start:end:end])
	}
	return out, nil
}

// Pluck maps every element through pick.
func Pluck[T, V any](s []T, pick func(T) V) []V {
	out := make([]V, len(s))
	for i, x := range s {
		out[i] = pick(x)
	}
	return out
}

// Only returns a copy of m restricted to keys.
func Only[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Except returns a copy of m without keys.
func Except[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := maps.Clone(m)
	if out == nil {
		out = make(map[K]V)
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Wrap returns v as a list: nil → empty, []any → itself, other → [v].
func Wrap(v any) []any {
	switch x := v.(type) {
	case nil:
		return []any{}
	case []any:
		return x
	default:
		return []any{v}
	}
}

// First returns the first element satisfying pred (any element when pred is nil).
func First[T any](s []T, pred func(T) bool) (T, bool) {
	for _, x := range s {
		if pred == nil || pred(x) {
			return x, true
		}
	}
	var zero T
	return zero, false
}

// Last returns the last element satisfying pred (any element when pred is nil).
func Last[T any](s []T, pred func(T) bool) (T, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if pred == nil || pred(s[i]) {
			return s[i], true
		}
	}
	var zero T
	return zero, false
}

// Sum adds all elements; the empty sum is zero.
func Sum[T Number](s []T) T {
	var total T
	for _, x := range s {
		total += x
	}
	return total
}

// Min returns the smallest element or ErrEmpty.
func Min[T constraints.Ordered](s []T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return slices.Min(s), nil
}

// Max returns the largest element or ErrEmpty.
func Max[T constraints.Ordered](s []T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return slices.Max(s), nil
}

// IsList reports whether v is a slice-typed []any (as opposed to a map).
func IsList(v any) bool {
	_, ok := v.([]any)
	return ok
}
