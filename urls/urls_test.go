package urls_test

import (
	"crypto/tls"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/katalvlaran/lvkit/urls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild joins paths and encodes sorted query keys.
func TestBuild(t *testing.T) {
	got, err := urls.Build("https://example.com", "/search", url.Values{"q": {"go lang"}, "a": {"1"}})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/search?a=1&q=go+lang", got)

	got, err = urls.Build("https://example.com/blog/?page=2", "post", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/blog/post?page=2", got)

	_, err = urls.Build("http://[::1", "x", nil)
	assert.ErrorIs(t, err, urls.ErrInvalid)
}

// TestQueryEditing covers WithQuery and WithoutQuery.
func TestQueryEditing(t *testing.T) {
	got, err := urls.WithQuery("https://x.io/p?a=1&b=2#top", map[string]string{"b": "3", "c": "x y"})
	require.NoError(t, err)
	assert.Equal(t, "https://x.io/p?a=1&b=3&c=x+y#top", got)

	got, err = urls.WithoutQuery("https://x.io/p?a=1&b=2#top", "a")
	require.NoError(t, err)
	assert.Equal(t, "https://x.io/p?b=2#top", got)

	got, err = urls.WithoutQuery("https://x.io/p?a=1&b=2#top")
	require.NoError(t, err)
	assert.Equal(t, "https://x.io/p#top", got)
}

// TestJoin resolves dot segments and duplicate slashes.
func TestJoin(t *testing.T) {
	got, err := urls.Join("https://x.io/api/", "/v1/", "users", "../groups")
	require.NoError(t, err)
	assert.Equal(t, "https://x.io/api/v1/groups", got)

	got, err = urls.Resolve("https://x.io/docs/intro", "../img/a.png")
	require.NoError(t, err)
	assert.Equal(t, "https://x.io/img/a.png", got)

	assert.Equal(t, "/blog/hello-world", urls.SlugPath("/Blog//Hello World/"))
	assert.Equal(t, "/", urls.SlugPath(""))
}

// TestDomains covers host extraction and registrable domains.
func TestDomains(t *testing.T) {
	d, err := urls.Domain("https://WWW.Example.com:8443/x")
	require.NoError(t, err)
	assert.Equal(t, "www.example.com", d)

	_, err = urls.Domain("/relative/path")
	assert.ErrorIs(t, err, urls.ErrNoHost)

	cases := map[string]string{
		"https://shop.example.co.uk/cart": "example.co.uk",
		"http://a.b.example.com":          "example.com",
		"http://127.0.0.1:8080/":          "127.0.0.1",
		"http://localhost/":               "localhost",
	}
	for in, want := range cases {
		got, err := urls.RootDomain(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

// TestValidity separates absolute, valid and junk inputs.
func TestValidity(t *testing.T) {
	assert.True(t, urls.IsValid("https://example.com/path?q=1"))
	assert.True(t, urls.IsValid("ftp://files.example.com"))
	assert.False(t, urls.IsValid("mailto:someone@example.com"))
	assert.False(t, urls.IsValid("example.com"))
	assert.False(t, urls.IsValid("http://"))
	assert.False(t, urls.IsValid("javascript:alert(1)"))

	assert.True(t, urls.IsAbsolute("mailto:someone@example.com"))
	assert.False(t, urls.IsAbsolute("/just/a/path"))
}

// TestIDN converts hosts between Unicode and Punycode.
func TestIDN(t *testing.T) {
	got, err := urls.ToASCII("https://Bücher.example:8080/a?b=c")
	require.NoError(t, err)
	assert.Equal(t, "https://xn--bcher-kva.example:8080/a?b=c", got)

	got, err = urls.ToUnicode("xn--bcher-kva.example")
	require.NoError(t, err)
	assert.Equal(t, "bücher.example", got)

	_, err = urls.ToASCII("bad_host!.example")
	assert.ErrorIs(t, err, urls.ErrIDNA)
}

// TestCurrent reconstructs the request URL behind proxies.
func TestCurrent(t *testing.T) {
	r := httptest.NewRequest("GET", "http://internal:8080/a/b?x=1", nil)
	assert.Equal(t, "http://internal:8080/a/b?x=1", urls.Current(r))

	r.TLS = &tls.ConnectionState{}
	assert.Equal(t, "https://internal:8080/a/b?x=1", urls.Current(r))

	r.Header.Set("X-Forwarded-Proto", "http, https")
	r.Header.Set("X-Forwarded-Host", "www.example.com")
	assert.Equal(t, "http://www.example.com/a/b?x=1", urls.Current(r))
}
