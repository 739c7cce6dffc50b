package email

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/mail"
	"strings"

	"golang.org/x/net/idna"
)

var (
	// ErrInvalid is returned for syntactically invalid addresses.
	ErrInvalid = errors.New("email: invalid address")
	// ErrNoMX is returned when the domain accepts no mail.
	ErrNoMX = errors.New("email: domain has no mail exchanger")
)

const (
	maxLocal   = 64
	maxAddress = 254
)

// Resolver is the subset of *net.Resolver used by ValidateDomain.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Validate reports whether addr is one bare RFC 5322 address with a
// dotted, IDNA-valid domain.
func Validate(addr string) error {
	_, _, err := parse(addr)
	return err
}

// IsValid is Validate as a predicate.
func IsValid(addr string) bool { return Validate(addr) == nil }

func parse(addr string) (local, domain string, err error) {
	addr = strings.TrimSpace(addr)
	if addr == "" || len(addr) > maxAddress {
		return "", "", fmt.Errorf("%w: length %d", ErrInvalid, len(addr))
	}
	parsed, perr := mail.ParseAddress(addr)
	if perr != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalid, perr)
	}
	// Quoted local parts come back unquoted, so compare the form, not the text.
	if parsed.Name != "" || strings.HasSuffix(addr, ">") || strings.HasSuffix(addr, ")") {
		return "", "", fmt.Errorf("%w: %q is not a bare address", ErrInvalid, addr)
	}
	at := strings.LastIndexByte(addr, '@')
	local, domain = addr[:at], addr[at+1:]
	if len(local) > maxLocal {
		return "", "", fmt.Errorf("%w: local part longer than %d", ErrInvalid, maxLocal)
	}
	if !strings.Contains(domain, ".") {
		return "", "", fmt.Errorf("%w: domain %q is not qualified", ErrInvalid, domain)
	}
	if _, ierr := idna.Lookup.ToASCII(domain); ierr != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalid, ierr)
	}
	return local, domain, nil
}

// ValidateDomain checks that addr's domain has MX records, or at least
// an address record. A nil resolver means net.DefaultResolver.
func ValidateDomain(ctx context.Context, addr string, r Resolver) error {
	_, domain, err := parse(addr)
	if err != nil {
		return err
	}
	if r == nil {
		r = net.DefaultResolver
	}
	host, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	mx, mxErr := r.LookupMX(ctx, host)
	if mxErr == nil {
		for _, m := range mx {
			// A single "." MX is a null MX (RFC 7505).
			if m.Host != "." && m.Host != "" {
				return nil
			}
		}
		if len(mx) > 0 {
			return fmt.Errorf("%w: %s publishes a null MX", ErrNoMX, host)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if addrs, err := r.LookupHost(ctx, host); err == nil && len(addrs) > 0 {
		return nil
	}
	if mxErr != nil {
		return fmt.Errorf("%w: %s: %v", ErrNoMX, host, mxErr)
	}
	return fmt.Errorf("%w: %s", ErrNoMX, host)
}

// Normalize trims addr, lower-cases the domain and converts it to
// Punycode. The local part is kept as is.
func Normalize(addr string) (string, error) {
	local, domain, err := parse(addr)
	if err != nil {
		return "", err
	}
	ascii, err := idna.Lookup.ToASCII(strings.ToLower(domain))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return local + "@" + ascii, nil
}

// Domain returns the part after the last '@', lower-cased.
func Domain(addr string) (string, error) {
	_, domain, err := parse(addr)
	return strings.ToLower(domain), err
}

// Local returns the part before the last '@'.
func Local(addr string) (string, error) {
	local, _, err := parse(addr)
	return local, err
}
