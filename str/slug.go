package str

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultSlugSeparator joins slug words when Slugify gets an empty separator.
const DefaultSlugSeparator = "-"

// special covers letters that do not decompose into base + mark.
var special = map[rune]string{
	'ß': "ss", 'Æ': "AE", 'æ': "ae", 'Ø': "O", 'ø': "o", 'Œ': "OE", 'œ': "oe",
	'Ł': "L", 'ł': "l", 'Đ': "D", 'đ': "d", 'Ð': "D", 'ð': "d", 'Þ': "TH",
	'þ': "th", 'ı': "i",
}

// Ascii transliterates s to ASCII: marks are stripped after NFD
// decomposition, a few ligatures are expanded, and anything left
// outside ASCII is dropped.
func Ascii(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	decomposed, _, err := transform.String(t, s)
	if err != nil {
		decomposed = s
	}
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if rep, ok := special[r]; ok {
			b.WriteString(rep)
			continue
		}
		if r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Slugify returns a lowercase, URL-safe identifier of ASCII letters and
// digits joined by sep. It is idempotent: Slugify(Slugify(s)) == Slugify(s).
func Slugify(s, sep string) string {
	if sep == "" {
		sep = DefaultSlugSeparator
	}
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(Ascii(s)) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			if pending && b.Len() > 0 {
				b.WriteString(sep)
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}
