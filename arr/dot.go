package arr

import (
	"fmt"
	"strings"
)

// Separator splits dot-notation paths.
const Separator = "."

// Get reads the value at a dot path in m. def is returned when any
// segment is missing or a non-map is met before the last segment.
// A literal key containing dots ("a.b") wins over the nested lookup.
// An empty path returns m itself.
func Get(m map[string]any, path string, def any) any {
	if path == "" {
		return m
	}
	if v, ok := lookup(m, path); ok {
		return v
	}
	return def
}

// Has reports whether path resolves in m.
func Has(m map[string]any, path string) bool {
	if path == "" {
		return false
	}
	_, ok := lookup(m, path)
	return ok
}

func lookup(m map[string]any, path string) (any, bool) {
	if v, ok := m[path]; ok {
		return v, true
	}
	cur := any(m)
	for _, seg := range strings.Split(path, Separator) {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = node[seg]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// Set writes value at path, creating intermediate maps as needed.
// It fails with ErrPath when an intermediate segment holds a non-map.
func Set(m map[string]any, path string, value any) error {
	if m == nil || path == "" {
		return fmt.Errorf("%w: empty target or path", ErrPath)
	}
	segs := strings.Split(path, Separator)
	node := m
	for i, seg := range segs[:len(segs)-1] {
		next, exists := node[seg]
		if !exists {
			child := map[string]any{}
			node[seg] = child
			node = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q is not a map", ErrPath, strings.Join(segs[:i+1], Separator))
		}
		node = child
	}
	node[segs[len(segs)-1]] = value
	return nil
}

// Forget removes the value at path. Missing paths are a no-op.
func Forget(m map[string]any, path string) {
	if m == nil || path == "" {
		return
	}
	segs := strings.Split(path, Separator)
	node := m
	for _, seg := range segs[:len(segs)-1] {
		child, ok := node[seg].(map[string]any)
		if !ok {
			return
		}
		node = child
	}
	delete(node, segs[len(segs)-1])
}

// Dot flattens nested maps into a single level keyed by dot paths.
// Empty nested maps are kept as leaves so Undot can restore them.
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any)
	dotInto(out, m, "")
	return out
}

func dotInto(out map[string]any, m map[string]any, prefix string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + Separator + k
		}
		if child, ok := v.(map[string]any); ok && len(child) > 0 {
			dotInto(out, child, key)
			continue
		}
		out[key] = v
	}
}

// Undot expands a dot-keyed map back into nested maps.
// Conflicting keys ("a" and "a.b") resolve in favour of the nested form.
func Undot(flat map[string]any) map[string]any {
	out := make(map[string]any)
	for k, v := range flat {
		if !strings.Contains(k, Separator) {
			out[k] = v
		}
	}
	for k, v := range flat {
		if strings.Contains(k, Separator) {
			ensureMaps(out, k)
			_ = Set(out, k, v)
		}
	}
	return out
}

// ensureMaps replaces scalar intermediates on path with empty maps.
func ensureMaps(m map[string]any, path string) {
	segs := strings.Split(path, Separator)
	node := m
	for _, seg := range segs[:len(segs)-1] {
		child, ok := node[seg].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[seg] = child
		}
		node = child
	}
}
