package str

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Words splits s into words on any non-letter/non-digit rune and at
// lower→upper and acronym→word boundaries ("parseHTTPResponse" →
// parse, HTTP, Response).
func Words(s string) []string {
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	rs := []rune(s)
	for i, r := range rs {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 && unicode.IsUpper(r) {
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// Camel returns lowerCamelCase ("user_id" → "userId").
func Camel(s string) string {
	return LcFirst(Studly(s))
}

// Studly returns UpperCamelCase ("user_id" → "UserId").
func Studly(s string) string {
	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(UcFirst(strings.ToLower(w)))
	}
	return b.String()
}

// Snake returns snake_case ("UserID" → "user_id").
func Snake(s string) string {
	return Delimit(s, "_")
}

// Kebab returns kebab-case ("UserID" → "user-id").
func Kebab(s string) string {
	return Delimit(s, "-")
}

// Delimit lowercases the words of s and joins them with sep.
func Delimit(s, sep string) string {
	ws := Words(s)
	for i, w := range ws {
		ws[i] = strings.ToLower(w)
	}
	return strings.Join(ws, sep)
}

// Title upper-cases the first letter of every word using the casing
// rules of tag (language.Und for language-neutral rules).
func Title(s string, tag language.Tag) string {
	return cases.Title(tag).String(s)
}

// Upper and Lower apply full Unicode, language-aware case mapping
// (Upper("ß", language.German) == "SS").
func Upper(s string, tag language.Tag) string { return cases.Upper(tag).String(s) }

// Lower is the inverse of Upper.
func Lower(s string, tag language.Tag) string { return cases.Lower(tag).String(s) }

// UcFirst upper-cases the first rune.
func UcFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// LcFirst lower-cases the first rune.
func LcFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
