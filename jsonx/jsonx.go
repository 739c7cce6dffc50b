package jsonx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

var (
	// ErrInvalid is returned for malformed JSON input.
	ErrInvalid = errors.New("jsonx: invalid JSON")
	// ErrPatch wraps patch decoding and application failures.
	ErrPatch = errors.New("jsonx: patch failed")
)

// DefaultIndent is four spaces.
const DefaultIndent = "    "

// Valid reports whether src is a single well-formed JSON value.
func Valid(src []byte) bool {
	return gjson.ValidBytes(src)
}

// Pretty re-indents src with indent per level. Empty objects and arrays
// stay on one line ("{}", "[]").
func Pretty(src []byte, indent string) ([]byte, error) {
	if !Valid(src) {
		return nil, ErrInvalid
	}
	var (
		out      bytes.Buffer
		depth    int
		inString bool
		escaped  bool
	)
	out.Grow(len(src) + len(src)/2)
	newline := func() {
		out.WriteByte('\n')
		out.WriteString(strings.Repeat(indent, depth))
	}

	for i := 0; i < len(src); i++ {
		c := src[i]
		if inString {
			out.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case ' ', '\t', '\n', '\r':
		case '"':
			inString = true
			out.WriteByte(c)
		case '{', '[':
			out.WriteByte(c)
			if j := nextNonSpace(src, i+1); j < len(src) && (src[j] == '}' || src[j] == ']') {
				out.WriteByte(src[j])
				i = j
				continue
			}
			depth++
			newline()
		case '}', ']':
			depth--
			newline()
			out.WriteByte(c)
		case ',':
			out.WriteByte(c)
			newline()
		case ':':
			out.WriteString(": ")
		default:
			out.WriteByte(c)
		}
	}
	return out.Bytes(), nil
}

func nextNonSpace(src []byte, i int) int {
	for i < len(src) {
		switch src[i] {
		case ' ', '\t', '\n', '\r':
			i++
		default:
			return i
		}
	}
	return i
}

// Minify removes insignificant whitespace.
func Minify(src []byte) ([]byte, error) {
	if !Valid(src) {
		return nil, ErrInvalid
	}
	return pretty.Ugly(src), nil
}

// SortKeys pretty-prints src with object keys sorted, for stable diffs.
func SortKeys(src []byte, indent string) ([]byte, error) {
	if !Valid(src) {
		return nil, ErrInvalid
	}
	opts := *pretty.DefaultOptions
	opts.Indent = indent
	opts.SortKeys = true
	return bytes.TrimRight(pretty.PrettyOptions(src, &opts), "\n"), nil
}

// Get returns the raw JSON at a GJSON path ("users.#.name",
// "items.0.id") and whether it exists.
func Get(src []byte, path string) (string, bool) {
	r := gjson.GetBytes(src, path)
	return r.Raw, r.Exists()
}

// GetString returns the string form of the value at path.
func GetString(src []byte, path string) string {
	return gjson.GetBytes(src, path).String()
}

// GetMany returns raw values for several paths at once, "" when absent.
func GetMany(src []byte, paths ...string) []string {
	rs := gjson.GetManyBytes(src, paths...)
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Raw
	}
	return out
}

// MergePatch applies an RFC 7396 merge patch to doc.
func MergePatch(doc, patch []byte) ([]byte, error) {
	out, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPatch, err)
	}
	return out, nil
}

// CreateMergePatch returns the merge patch that turns original into
// modified.
func CreateMergePatch(original, modified []byte) ([]byte, error) {
	out, err := jsonpatch.CreateMergePatch(original, modified)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPatch, err)
	}
	return out, nil
}

// ApplyPatch applies an RFC 6902 operation list to doc.
func ApplyPatch(doc, ops []byte) ([]byte, error) {
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrPatch, err)
	}
	out, err := p.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPatch, err)
	}
	return out, nil
}

// Equal reports whether two documents are semantically equal (key order
// and whitespace ignored).
func Equal(a, b []byte) bool {
	return jsonpatch.Equal(a, b)
}

// Marshal encodes v and pretty-prints it with indent, leaving HTML
// characters unescaped.
func Marshal(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return Pretty(bytes.TrimRight(buf.Bytes(), "\n"), indent)
}
