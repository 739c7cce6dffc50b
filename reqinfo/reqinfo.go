package reqinfo

import (
	"errors"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// ErrNoAddr is returned when neither the peer address nor a trusted
// forwarding header yields an IP.
var ErrNoAddr = errors.New("reqinfo: no client address")

// ClientIP returns the originating client address. X-Forwarded-For is
// walked right to left, skipping trusted hops, so a client cannot spoof
// its address by prepending entries.
func ClientIP(r *http.Request, opts ...Option) (netip.Addr, error) {
	o := buildOptions(opts)
	peer, ok := parseAddr(r.RemoteAddr)
	if !ok {
		return netip.Addr{}, ErrNoAddr
	}
	if !o.trusted(peer) {
		return peer, nil
	}
	if xff := r.Header.Values("X-Forwarded-For"); len(xff) > 0 {
		hops := strings.Split(strings.Join(xff, ","), ",")
		var leftmost netip.Addr
		for i := len(hops) - 1; i >= 0; i-- {
			a, ok := parseAddr(hops[i])
			if !ok {
				continue
			}
			leftmost = a
			if !o.trusted(a) {
				return a, nil
			}
		}
		if leftmost.IsValid() {
			return leftmost, nil
		}
	}
	if a, ok := parseAddr(r.Header.Get("X-Real-IP")); ok {
		return a, nil
	}
	return peer, nil
}

// parseAddr accepts "ip", "ip:port" and "[ipv6]:port".
func parseAddr(s string) (netip.Addr, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return netip.Addr{}, false
	}
	if a, err := netip.ParseAddr(s); err == nil {
		return a.Unmap(), true
	}
	if ap, err := netip.ParseAddrPort(s); err == nil {
		return ap.Addr().Unmap(), true
	}
	if host, _, err := net.SplitHostPort(s); err == nil {
		if a, err := netip.ParseAddr(host); err == nil {
			return a.Unmap(), true
		}
	}
	return netip.Addr{}, false
}

func fromProxy(r *http.Request, o Options) bool {
	peer, ok := parseAddr(r.RemoteAddr)
	return ok && o.trusted(peer)
}

// IsSecure reports whether the request reached the origin (or a trusted
// proxy in front of it) over TLS.
func IsSecure(r *http.Request, opts ...Option) bool {
	if r.TLS != nil {
		return true
	}
	if !fromProxy(r, buildOptions(opts)) {
		return false
	}
	if p := firstValue(r.Header.Get("X-Forwarded-Proto")); p != "" {
		return strings.EqualFold(p, "https")
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Ssl"), "on") ||
		strings.EqualFold(r.Header.Get("Front-End-Https"), "on")
}

// Scheme returns "https" or "http".
func Scheme(r *http.Request, opts ...Option) string {
	if IsSecure(r, opts...) {
		return "https"
	}
	return "http"
}

// Host returns the requested host name without port, lower-cased.
func Host(r *http.Request, opts ...Option) string {
	h, _ := hostPort(r, buildOptions(opts))
	return h
}

// Port returns the requested port, falling back to the scheme default.
func Port(r *http.Request, opts ...Option) int {
	o := buildOptions(opts)
	if _, p := hostPort(r, o); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			return n
		}
	}
	if fromProxy(r, o) {
		if n, err := strconv.Atoi(firstValue(r.Header.Get("X-Forwarded-Port"))); err == nil {
			return n
		}
	}
	if IsSecure(r, opts...) {
		return 443
	}
	return 80
}

func hostPort(r *http.Request, o Options) (string, string) {
	raw := r.Host
	if fromProxy(r, o) {
		if fh := firstValue(r.Header.Get("X-Forwarded-Host")); fh != "" {
			raw = fh
		}
	}
	if raw == "" && r.URL != nil {
		raw = r.URL.Host
	}
	host, port, err := net.SplitHostPort(raw)
	if err != nil {
		host, port = strings.Trim(raw, "[]"), ""
	}
	return strings.ToLower(host), port
}

// IsAjax reports whether the request carries X-Requested-With:
// XMLHttpRequest.
func IsAjax(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest")
}

// WantsJSON reports whether the Accept header lists application/json or
// a +json media type.
func WantsJSON(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mt := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
		if mt == "application/json" || strings.HasSuffix(mt, "+json") {
			return true
		}
	}
	return false
}

// UserAgent returns the User-Agent header.
func UserAgent(r *http.Request) string { return r.UserAgent() }

// Referer returns the Referer header.
func Referer(r *http.Request) string { return r.Referer() }

// PreferredLanguage picks the best match for Accept-Language. With no
// supported tags it returns the client's top choice, or language.Und.
// Otherwise it returns one of supported, the first one when nothing
// matches.
func PreferredLanguage(r *http.Request, supported ...language.Tag) language.Tag {
	accept, _, _ := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if len(supported) == 0 {
		if len(accept) == 0 {
			return language.Und
		}
		return accept[0]
	}
	_, idx, _ := language.NewMatcher(supported).Match(accept...)
	return supported[idx]
}

func firstValue(h string) string {
	if i := strings.IndexByte(h, ','); i >= 0 {
		h = h[:i]
	}
	return strings.TrimSpace(h)
}
