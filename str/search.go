package str

import "strings"

// Between returns the text between the first from and the next to.
// ok is false if either delimiter is missing.
func Between(s, from, to string) (string, bool) {
	_, rest, found := strings.Cut(s, from)
	if !found {
		return "", false
	}
	inner, _, found := strings.Cut(rest, to)
	if !found {
		return "", false
	}
	return inner, true
}

// After returns everything after the first search; s when absent.
func After(s, search string) string {
	if search == "" {
		return s
	}
	if _, after, ok := strings.Cut(s, search); ok {
		return after
	}
	return s
}

// AfterLast returns everything after the last search; s when absent.
func AfterLast(s, search string) string {
	if search == "" {
		return s
	}
	if i := strings.LastIndex(s, search); i >= 0 {
		return s[i+len(search):]
	}
	return s
}

// Before returns everything before the first search; s when absent.
func Before(s, search string) string {
	if search == "" {
		return s
	}
	if before, _, ok := strings.Cut(s, search); ok {
		return before
	}
	return s
}

// BeforeLast returns everything before the last search; s when absent.
func BeforeLast(s, search string) string {
	if search == "" {
		return s
	}
	if i := strings.LastIndex(s, search); i >= 0 {
		return s[:i]
	}
	return s
}

// StartsWith reports whether s starts with any non-empty prefix.
func StartsWith(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// EndsWith reports whether s ends with any non-empty suffix.
func EndsWith(s string, suffixes ...string) bool {
	for _, p := range suffixes {
		if p != "" && strings.HasSuffix(s, p) {
			return true
		}
	}
	return false
}

// Contains reports whether s contains any non-empty needle.
func Contains(s string, needles ...string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether s contains every needle.
func ContainsAll(s string, needles ...string) bool {
	for _, n := range needles {
		if !strings.Contains(s, n) {
			return false
		}
	}
	return true
}

// Excerpt returns the first occurrence of phrase (case-insensitive) with
// up to radius graphemes of context on each side; omission marks
// truncated ends. ok is false when phrase is absent.
func Excerpt(text, phrase string, radius int, omission string) (string, bool) {
	if phrase == "" {
		return "", false
	}
	idx, span := -1, len(phrase)
	if lower := strings.ToLower(text); len(lower) == len(text) {
		needle := strings.ToLower(phrase)
		idx, span = strings.Index(lower, needle), len(needle)
	} else {
		// Case folding shifted byte offsets; use an exact match instead.
		idx = strings.Index(text, phrase)
	}
	if idx < 0 {
		return "", false
	}

	gs := graphemes(text)
	start := Length(text[:idx])
	end := start + Length(text[idx:idx+span])
	from := max(start-radius, 0)
	to := min(end+radius, len(gs))

	out := strings.Join(gs[from:to], "")
	if from > 0 {
		out = omission + strings.TrimLeft(out, " ")
	}
	if to < len(gs) {
		out = strings.TrimRight(out, " ") + omission
	}
	return out, true
}
