package reqinfo

import "net/netip"

// Options controls which peers may set forwarding headers.
type Options struct {
	TrustedProxies []netip.Prefix
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions trusts loopback and RFC 1918 / RFC 4193 networks.
func DefaultOptions() Options {
	return Options{TrustedProxies: []netip.Prefix{
		netip.MustParsePrefix("127.0.0.0/8"),
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("172.16.0.0/12"),
		netip.MustParsePrefix("192.168.0.0/16"),
		netip.MustParsePrefix("::1/128"),
		netip.MustParsePrefix("fc00::/7"),
	}}
}

// WithTrustedProxies replaces the trusted list with the given CIDRs or
// single addresses. It panics on an unparseable entry.
func WithTrustedProxies(cidrs ...string) Option {
	prefixes := make([]netip.Prefix, 0, len(cidrs))
	for _, c := range cidrs {
		p, err := netip.ParsePrefix(c)
		if err != nil {
			a, aerr := netip.ParseAddr(c)
			if aerr != nil {
				panic("reqinfo: invalid trusted proxy " + c)
			}
			p = netip.PrefixFrom(a, a.BitLen())
		}
		prefixes = append(prefixes, p.Masked())
	}
	return func(o *Options) { o.TrustedProxies = prefixes }
}

// TrustNone disables forwarding headers entirely.
func TrustNone() Option {
	return func(o *Options) { o.TrustedProxies = nil }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func (o Options) trusted(a netip.Addr) bool {
	a = a.Unmap()
	for _, p := range o.TrustedProxies {
		if p.Contains(a) {
			return true
		}
	}
	return false
}
