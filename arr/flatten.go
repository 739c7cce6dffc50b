package arr

import (
	"maps"
	"slices"
)

// Flatten collapses arbitrarily nested []any (and map[string]any values,
// visited in sorted key order) into a single flat list of leaves.
// Every leaf value is preserved, in depth-first order.
func Flatten(v []any) []any {
	return FlattenDepth(v, -1)
}

// FlattenDepth is Flatten limited to depth levels of nesting.
// depth < 0 means unlimited; depth == 0 returns a shallow copy.
func FlattenDepth(v []any, depth int) []any {
	out := make([]any, 0, len(v))
	return flattenInto(out, v, depth)
}

func flattenInto(out []any, v []any, depth int) []any {
	for _, item := range v {
		if depth == 0 {
			out = append(out, item)
			continue
		}
		switch x := item.(type) {
		case []any:
			out = flattenInto(out, x, depth-1)
		case map[string]any:
			keys := slices.Sorted(maps.Keys(x))
			vals := make([]any, 0, len(keys))
			for _, k := range keys {
				vals = append(vals, x[k])
			}
			out = flattenInto(out, vals, depth-1)
		default:
			out = append(out, item)
		}
	}
	return out
}
