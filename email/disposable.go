package email

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed disposable.txt
var disposableList string

var (
	disposableOnce sync.Once
	disposable     map[string]struct{}
)

func loadDisposable() {
	disposable = make(map[string]struct{})
	for _, line := range strings.Split(disposableList, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		disposable[strings.ToLower(line)] = struct{}{}
	}
}

// IsDisposable reports whether addr (or a bare domain) belongs to a
// known throw-away mail provider, including its subdomains.
func IsDisposable(addr string) bool {
	disposableOnce.Do(loadDisposable)
	domain := strings.ToLower(strings.TrimSpace(addr))
	if at := strings.LastIndexByte(domain, '@'); at >= 0 {
		domain = domain[at+1:]
	}
	for domain != "" {
		if _, ok := disposable[domain]; ok {
			return true
		}
		dot := strings.IndexByte(domain, '.')
		if dot < 0 {
			break
		}
		domain = domain[dot+1:]
	}
	return false
}
