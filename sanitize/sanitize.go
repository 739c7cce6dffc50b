package sanitize

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// ErrMarkdown is returned when Markdown rendering fails.
var ErrMarkdown = errors.New("sanitize: markdown rendering failed")

// maxFilenameBytes matches the common filesystem limit for one path element.
const maxFilenameBytes = 255

// fallbackFilename is used when nothing usable survives Filename.
const fallbackFilename = "file"

var (
	strictPolicy = bluemonday.StrictPolicy()
	ugcPolicy    = bluemonday.UGCPolicy()
	markdown     = goldmark.New()
)

// StripTags removes all markup and returns unescaped plain text.
// Block-level boundaries collapse, so "<p>a</p><p>b</p>" becomes "ab".
func StripTags(s string) string {
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// HTML keeps formatting, links and images that are safe to embed and
// drops scripts, event handlers and unknown elements.
func HTML(s string) string {
	return ugcPolicy.Sanitize(s)
}

// Markdown renders src as CommonMark and sanitizes the resulting HTML.
func Markdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMarkdown, err)
	}
	return ugcPolicy.Sanitize(buf.String()), nil
}

// Filename makes s safe as a single path element: path separators,
// reserved and control characters become "-", runs collapse, leading
// and trailing dots, dashes and spaces are trimmed, and the result is
// capped at 255 bytes without splitting a rune.
func Filename(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastDash := false
	for _, r := range s {
		bad := unicode.IsControl(r) || strings.ContainsRune(`/\<>:"|?*`, r)
		if bad || unicode.IsSpace(r) && r != ' ' {
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
			continue
		}
		if r == '-' {
			if lastDash {
				continue
			}
			lastDash = true
		} else {
			lastDash = false
		}
		b.WriteRune(r)
	}

	out := strings.Trim(b.String(), ". -")
	for len(out) > maxFilenameBytes {
		_, size := utf8.DecodeLastRuneInString(out)
		out = out[:len(out)-size]
	}
	if out == "" {
		return fallbackFilename
	}
	return out
}

// Email drops every character not allowed in an address
// (letters, digits and !#$%&'*+-=?^_`{|}~@.[]).
func Email(s string) string {
	return keep(s, func(r rune) bool {
		return r < unicode.MaxASCII && (isAlnum(r) || strings.ContainsRune("!#$%&'*+-=?^_`{|}~@.[]", r))
	})
}

// Int keeps ASCII digits and sign characters.
func Int(s string) string {
	return keep(s, func(r rune) bool {
		return r >= '0' && r <= '9' || r == '+' || r == '-'
	})
}

// Float keeps digits, signs, and optionally the decimal point and
// exponent markers.
func Float(s string, allowFraction, allowExponent bool) string {
	return keep(s, func(r rune) bool {
		switch {
		case r >= '0' && r <= '9', r == '+', r == '-':
			return true
		case r == '.':
			return allowFraction
		case r == 'e', r == 'E':
			return allowExponent
		}
		return false
	})
}

// Whitespace trims s and collapses internal whitespace runs to one space.
func Whitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func keep(s string, ok func(rune) bool) string {
	return strings.Map(func(r rune) rune {
		if ok(r) {
			return r
		}
		return -1
	}, s)
}

func isAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}
