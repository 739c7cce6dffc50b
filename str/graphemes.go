package str

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// graphemes splits s into user-perceived characters.
func graphemes(s string) []string {
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Length counts grapheme clusters ("🇺🇦" and "é" built from e + U+0301 are 1).
func Length(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Substr returns length graphemes starting at start. A negative start
// counts from the end; length < 0 means "to the end".
func Substr(s string, start, length int) string {
	gs := graphemes(s)
	n := len(gs)
	if start < 0 {
		start = max(n+start, 0)
	}
	if start >= n {
		return ""
	}
	end := n
	if length >= 0 {
		end = min(start+length, n)
	}
	return strings.Join(gs[start:end], "")
}

// Truncate keeps at most limit graphemes and appends suffix when it
// cut anything. Trailing spaces before the suffix are dropped.
func Truncate(s string, limit int, suffix string) string {
	if limit <= 0 {
		return ""
	}
	gs := graphemes(s)
	if len(gs) <= limit {
		return s
	}
	return strings.TrimRight(strings.Join(gs[:limit], ""), " ") + suffix
}

// TruncateWidth cuts s to fit within width terminal cells, tail included.
func TruncateWidth(s string, width int, tail string) string {
	return runewidth.Truncate(s, width, tail)
}

// LimitWords keeps the first n words (split on whitespace) and appends
// suffix when words were dropped.
func LimitWords(s string, n int, suffix string) string {
	fields := strings.Fields(s)
	if n < 0 || len(fields) <= n {
		return s
	}
	return strings.Join(fields[:n], " ") + suffix
}

// PadLeft pads s on the left with pad until it is width graphemes long.
func PadLeft(s string, width int, pad string) string {
	return padding(width-Length(s), pad) + s
}

// PadRight pads s on the right with pad until it is width graphemes long.
func PadRight(s string, width int, pad string) string {
	return s + padding(width-Length(s), pad)
}

// PadBoth centers s, giving the extra pad grapheme to the right.
func PadBoth(s string, width int, pad string) string {
	total := width - Length(s)
	if total <= 0 {
		return s
	}
	left := total / 2
	return padding(left, pad) + s + padding(total-left, pad)
}

// PadWidth right-pads s with spaces to width terminal cells.
func PadWidth(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func padding(n int, pad string) string {
	if n <= 0 || pad == "" {
		return ""
	}
	gs := graphemes(pad)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(gs[i%len(gs)])
	}
	return b.String()
}

// Reverse reverses s grapheme by grapheme, keeping combined characters intact.
func Reverse(s string) string {
	gs := graphemes(s)
	for i, j := 0, len(gs)-1; i < j; i, j = i+1, j-1 {
		gs[i], gs[j] = gs[j], gs[i]
	}
	return strings.Join(gs, "")
}

// Mask replaces length graphemes starting at index with char.
// A negative index counts from the end; length <= 0 masks to the end.
func Mask(s, char string, index, length int) string {
	if char == "" {
		return s
	}
	gs := graphemes(s)
	n := len(gs)
	if index < 0 {
		index = max(n+index, 0)
	}
	if index >= n {
		return s
	}
	end := n
	if length > 0 {
		end = min(index+length, n)
	}
	mask := graphemes(char)[0]
	for i := index; i < end; i++ {
		gs[i] = mask
	}
	return strings.Join(gs, "")
}
