package urls

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/katalvlaran/lvkit/str"
	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

var (
	// ErrInvalid is returned for strings that do not parse as URLs.
	ErrInvalid = errors.New("urls: invalid URL")
	// ErrNoHost is returned when a URL has no host component.
	ErrNoHost = errors.New("urls: URL has no host")
	// ErrIDNA wraps host name conversion failures.
	ErrIDNA = errors.New("urls: cannot convert host name")
)

// Schemes accepted by IsValid.
var Schemes = []string{"http", "https", "ftp", "ftps", "ws", "wss"}

func parse(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return u, nil
}

// Build joins base and path and appends query (keys sorted).
func Build(base, path string, query url.Values) (string, error) {
	u, err := parse(base)
	if err != nil {
		return "", err
	}
	if path != "" {
		u = u.JoinPath(path)
	}
	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			q[k] = append([]string(nil), vs...)
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// WithQuery sets (overwrites) the given query parameters.
func WithQuery(raw string, params map[string]string) (string, error) {
	u, err := parse(raw)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// WithoutQuery removes the named parameters, or the whole query string
// when no keys are given. The fragment is kept.
func WithoutQuery(raw string, keys ...string) (string, error) {
	u, err := parse(raw)
	if err != nil {
		return "", err
	}
	if len(keys) == 0 {
		u.RawQuery = ""
		u.ForceQuery = false
		return u.String(), nil
	}
	q := u.Query()
	for _, k := range keys {
		q.Del(k)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Join appends path segments to base, collapsing duplicate slashes.
// Segments are escaped; "." and ".." are resolved.
func Join(base string, segments ...string) (string, error) {
	u, err := parse(base)
	if err != nil {
		return "", err
	}
	return u.JoinPath(segments...).String(), nil
}

// SlugPath slugifies every segment of a slash-separated path, dropping
// empty ones: "/Blog/Hello World/" -> "/blog/hello-world".
func SlugPath(path string) string {
	parts := strings.Split(path, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := str.Slugify(p, "-"); s != "" {
			out = append(out, s)
		}
	}
	return "/" + strings.Join(out, "/")
}

// Domain returns the lower-cased host name without port.
func Domain(raw string) (string, error) {
	u, err := parse(raw)
	if err != nil {
		return "", err
	}
	h := strings.ToLower(u.Hostname())
	if h == "" {
		return "", fmt.Errorf("%w: %q", ErrNoHost, raw)
	}
	return h, nil
}

// RootDomain returns the registrable domain (eTLD+1), e.g.
// "shop.example.co.uk" -> "example.co.uk". IP hosts are returned as is.
func RootDomain(raw string) (string, error) {
	h, err := Domain(raw)
	if err != nil {
		return "", err
	}
	if net.ParseIP(h) != nil || !strings.Contains(h, ".") {
		return h, nil
	}
	ascii, err := idna.Lookup.ToASCII(h)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIDNA, err)
	}
	root, err := publicsuffix.EffectiveTLDPlusOne(ascii)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoHost, err)
	}
	return root, nil
}

// IsAbsolute reports whether raw has a scheme.
func IsAbsolute(raw string) bool {
	u, err := parse(raw)
	return err == nil && u.IsAbs()
}

// IsValid reports whether raw is an absolute URL with a known scheme and
// a host.
func IsValid(raw string) bool {
	u, err := url.ParseRequestURI(strings.TrimSpace(raw))
	if err != nil || u.Host == "" || u.Hostname() == "" {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	for _, s := range Schemes {
		if s == scheme {
			return true
		}
	}
	return false
}

// ToASCII converts the host of raw to its Punycode form.
// Bare host names are accepted too.
func ToASCII(raw string) (string, error) {
	return mapHost(raw, idna.Lookup.ToASCII)
}

// ToUnicode converts the host of raw from Punycode to Unicode.
func ToUnicode(raw string) (string, error) {
	return mapHost(raw, idna.Display.ToUnicode)
}

func mapHost(raw string, conv func(string) (string, error)) (string, error) {
	if !strings.Contains(raw, "://") {
		h, err := conv(strings.ToLower(raw))
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrIDNA, err)
		}
		return h, nil
	}
	u, err := parse(raw)
	if err != nil {
		return "", err
	}
	h, err := conv(strings.ToLower(u.Hostname()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIDNA, err)
	}
	if p := u.Port(); p != "" {
		h = net.JoinHostPort(h, p)
	}
	u.Host = h
	return u.String(), nil
}

// Current returns the absolute URL of r as the client requested it.
func Current(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(p, ",")[0]))
	}
	host := r.Host
	if h := r.Header.Get("X-Forwarded-Host"); h != "" {
		host = strings.TrimSpace(strings.Split(h, ",")[0])
	}
	return scheme + "://" + host + r.URL.RequestURI()
}

// Resolve resolves ref against base the way a browser resolves a link.
func Resolve(base, ref string) (string, error) {
	b, err := parse(base)
	if err != nil {
		return "", err
	}
	r, err := parse(ref)
	if err != nil {
		return "", err
	}
	return b.ResolveReference(r).String(), nil
}
