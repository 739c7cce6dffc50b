package sanitize_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvkit/sanitize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStripTags removes markup and decodes entities.
func TestStripTags(t *testing.T) {
	assert.Equal(t, "Hello world & co", sanitize.StripTags(`<b>Hello</b> <i>world</i> &amp; co`))
	assert.Equal(t, "", sanitize.StripTags(`<script>alert(1)</script>`))
	assert.Equal(t, "plain", sanitize.StripTags("plain"))
}

// TestHTML keeps safe markup and drops scripts and handlers.
func TestHTML(t *testing.T) {
	out := sanitize.HTML(`<p onclick="x()">hi <a href="https://example.com">link</a></p><script>bad()</script>`)
	assert.Contains(t, out, "<p>hi ")
	assert.Contains(t, out, `href="https://example.com"`)
	assert.NotContains(t, out, "onclick")
	assert.NotContains(t, out, "script")
}

// TestMarkdown renders and sanitizes.
func TestMarkdown(t *testing.T) {
	out, err := sanitize.Markdown("# Title\n\nSome *em* text.\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Title</h1>")
	assert.Contains(t, out, "<em>em</em>")
}

// TestFilename covers separators, reserved characters and length.
func TestFilename(t *testing.T) {
	cases := []struct{ in, want string }{
		{"report.pdf", "report.pdf"},
		{"../../etc/passwd", "etc-passwd"},
		{`a<b>c:d"e|f?g*h`, "a-b-c-d-e-f-g-h"},
		{"  .hidden. ", "hidden"},
		{"tab\tand\nnewline", "tab-and-newline"},
		{"///", "file"},
		{"", "file"},
		{"my file.txt", "my file.txt"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sanitize.Filename(tc.in), "input %q", tc.in)
	}

	long := strings.Repeat("é", 200) // 400 bytes
	got := sanitize.Filename(long)
	assert.LessOrEqual(t, len(got), 255)
	assert.Equal(t, strings.Repeat("é", 127), got)
}

// TestCharacterFilters covers Email, Int, Float and Whitespace.
func TestCharacterFilters(t *testing.T) {
	assert.Equal(t, "john.doe+tag@example.com", sanitize.Email("john.doe+tag@ex ample.com()"))
	assert.Equal(t, "-1234", sanitize.Int("-1,234 apples"))
	assert.Equal(t, "3.14e10", sanitize.Float("π≈3.14e10", true, true))
	assert.Equal(t, "31410", sanitize.Float("3.14e10", false, false))
	assert.Equal(t, "a b c", sanitize.Whitespace("  a \t b\n\nc  "))
}
