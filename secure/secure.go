// Package secure collects small cryptographic helpers: bcrypt password
// hashing, random tokens, HMAC signatures, HKDF key derivation and
// constant-time comparison.
package secure

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/hkdf"
)

var (
	ErrMismatch = errors.New("secure: password does not match")
	ErrHash     = errors.New("secure: cannot hash password")
	ErrLength   = errors.New("secure: invalid length")
	ErrAlphabet = errors.New("secure: alphabet needs at least two distinct bytes")
)

// Options tunes password hashing.
type Options struct {
	Cost int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions uses bcrypt.DefaultCost.
func DefaultOptions() Options { return Options{Cost: bcrypt.DefaultCost} }

// WithCost sets the bcrypt cost. Panics outside [bcrypt.MinCost, bcrypt.MaxCost].
func WithCost(cost int) Option {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		panic(fmt.Sprintf("secure: bcrypt cost %d out of range", cost))
	}
	return func(o *Options) { o.Cost = cost }
}

// HashPassword returns a bcrypt hash. Passwords longer than 72 bytes are
// rejected rather than silently truncated.
func HashPassword(password string, opts ...Option) (string, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), o.Cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHash, err)
	}
	return string(h), nil
}

// CheckPassword returns nil when password matches hash, ErrMismatch
// when it does not, and ErrHash for a malformed hash.
func CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return fmt.Errorf("%w: %w", ErrHash, err)
	}
}

// NeedsRehash reports whether hash was made with a cost other than the
// configured one, or is not a bcrypt hash at all.
func NeedsRehash(hash string, opts ...Option) bool {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	return err != nil || cost != o.Cost
}

// Bytes returns n random bytes.
func Bytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrLength, n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Token returns n random bytes encoded as unpadded URL-safe base64.
func Token(n int) (string, error) {
	b, err := Bytes(n)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Alphanumeric is the default alphabet for RandomString.
const Alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomString returns n bytes drawn uniformly from alphabet.
func RandomString(n int, alphabet string) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("%w: %d", ErrLength, n)
	}
	if alphabet == "" {
		alphabet = Alphanumeric
	}
	if distinct(alphabet) < 2 {
		return "", ErrAlphabet
	}
	limit := big.NewInt(int64(len(alphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out), nil
}

func distinct(s string) int {
	var seen [256]bool
	n := 0
	for i := 0; i < len(s); i++ {
		if !seen[s[i]] {
			seen[s[i]] = true
			n++
		}
	}
	return n
}

// HMAC returns the hex HMAC-SHA256 of msg under key.
func HMAC(key, msg []byte) string {
	m := hmac.New(sha256.New, key)
	m.Write(msg)
	return hex.EncodeToString(m.Sum(nil))
}

// VerifyHMAC checks a hex signature produced by HMAC in constant time.
func VerifyHMAC(key, msg []byte, signature string) bool {
	sig, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	m := hmac.New(sha256.New, key)
	m.Write(msg)
	return hmac.Equal(m.Sum(nil), sig)
}

// EqualConstantTime compares a and b without leaking where they differ.
// Length differences are still observable.
func EqualConstantTime(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// DeriveKey expands secret into n bytes with HKDF-SHA256.
func DeriveKey(secret, salt, info []byte, n int) ([]byte, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty secret", ErrLength)
	}
	if n <= 0 || n > 255*sha256.Size {
		return nil, fmt.Errorf("%w: %d", ErrLength, n)
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, salt, info), out); err != nil {
		return nil, fmt.Errorf("secure: derive key: %w", err)
	}
	return out, nil
}
