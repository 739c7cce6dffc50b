package uid

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrInvalidVersion is returned for versions New cannot produce.
	ErrInvalidVersion = errors.New("uid: unsupported UUID version")
	// ErrNameRequired is returned when a v3/v5 UUID has no name.
	ErrNameRequired = errors.New("uid: name-based UUID needs a name")
	// ErrInvalid is returned for strings that are not UUIDs.
	ErrInvalid = errors.New("uid: invalid UUID")
)

// Options for New.
type Options struct {
	Namespace uuid.UUID // v3/v5; defaults to uuid.NameSpaceURL
	Name      string    // v3/v5
}

// Option mutates Options.
type Option func(*Options)

// WithName sets the name hashed into v3/v5 UUIDs.
func WithName(name string) Option {
	return func(o *Options) { o.Name = name }
}

// WithNamespace sets the v3/v5 namespace. Panics on the nil UUID.
func WithNamespace(ns uuid.UUID) Option {
	if ns == uuid.Nil {
		panic("uid: WithNamespace(uuid.Nil)")
	}
	return func(o *Options) { o.Namespace = ns }
}

// Namespaces are the predefined RFC 9562 namespaces by short name.
var Namespaces = map[string]uuid.UUID{
	"dns":  uuid.NameSpaceDNS,
	"url":  uuid.NameSpaceURL,
	"oid":  uuid.NameSpaceOID,
	"x500": uuid.NameSpaceX500,
}

// New generates a UUID of the given version.
func New(version int, opts ...Option) (uuid.UUID, error) {
	o := Options{Namespace: uuid.NameSpaceURL}
	for _, fn := range opts {
		fn(&o)
	}
	switch version {
	case 1:
		return uuid.NewUUID()
	case 3, 5:
		if o.Name == "" {
			return uuid.Nil, fmt.Errorf("%w (v%d)", ErrNameRequired, version)
		}
		if version == 3 {
			return uuid.NewMD5(o.Namespace, []byte(o.Name)), nil
		}
		return uuid.NewSHA1(o.Namespace, []byte(o.Name)), nil
	case 4:
		return uuid.NewRandom()
	case 6:
		return uuid.NewV6()
	case 7:
		return uuid.NewV7()
	default:
		return uuid.Nil, fmt.Errorf("%w: %d", ErrInvalidVersion, version)
	}
}

// NewString is New rendered in canonical form.
func NewString(version int, opts ...Option) (string, error) {
	u, err := New(version, opts...)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// Parse accepts canonical, braced, urn:uuid: and 32-hex forms.
func Parse(s string) (uuid.UUID, error) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q: %v", ErrInvalid, s, err)
	}
	return u, nil
}

// Validate reports whether s parses as an RFC 9562 UUID (variant bits
// included). The nil UUID is valid.
func Validate(s string) error {
	u, err := Parse(s)
	if err != nil {
		return err
	}
	if u != uuid.Nil && u != uuid.Max && u.Variant() != uuid.RFC4122 {
		return fmt.Errorf("%w: %q has variant %s", ErrInvalid, s, u.Variant())
	}
	return nil
}

// IsValid is Validate as a predicate.
func IsValid(s string) bool { return Validate(s) == nil }

// Version returns the version nibble of s.
func Version(s string) (int, error) {
	u, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return int(u.Version()), nil
}

const shortBase = 36

// Short encodes u in lower-case base 36 (at most 25 characters).
func Short(u uuid.UUID) string {
	return new(big.Int).SetBytes(u[:]).Text(shortBase)
}

// FromShort decodes a Short string.
func FromShort(s string) (uuid.UUID, error) {
	n, ok := new(big.Int).SetString(strings.ToLower(strings.TrimSpace(s)), shortBase)
	if !ok || n.Sign() < 0 || n.BitLen() > 128 {
		return uuid.Nil, fmt.Errorf("%w: short form %q", ErrInvalid, s)
	}
	var u uuid.UUID
	n.FillBytes(u[:])
	return u, nil
}
