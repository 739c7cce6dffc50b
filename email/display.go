package email

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/lvkit/urls"
)

// Mask hides the middle of the local part: "jonathan@x.io" ->
// "j******n@x.io". Local parts of up to two characters become "*".
// Invalid input is masked entirely.
func Mask(addr string) string {
	local, domain, err := parse(addr)
	if err != nil {
		return strings.Repeat("*", utf8.RuneCountInString(addr))
	}
	runes := []rune(local)
	if len(runes) <= 2 {
		return strings.Repeat("*", len(runes)) + "@" + domain
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-2) + string(runes[len(runes)-1]) + "@" + domain
}

// Obfuscate encodes every character as a decimal HTML entity, which
// browsers render normally but naive scrapers miss.
func Obfuscate(addr string) string {
	var b strings.Builder
	for _, r := range addr {
		b.WriteString("&#")
		b.WriteString(strconv.Itoa(int(r)))
		b.WriteByte(';')
	}
	return b.String()
}

// GravatarOptions are the avatar query parameters.
type GravatarOptions struct {
	Size    int    // 1..2048; 0 omits the parameter
	Default string // "mp", "identicon", "404", or an image URL
	Rating  string // "g", "pg", "r", "x"
}

// GravatarBase is the avatar endpoint.
const GravatarBase = "https://www.gravatar.com/avatar/"

// Gravatar returns the avatar URL for addr, keyed by the SHA-256 of the
// trimmed, lower-cased address.
func Gravatar(addr string, opts GravatarOptions) (string, error) {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(addr))))
	q := url.Values{}
	if opts.Size > 0 {
		size := opts.Size
		if size > 2048 {
			size = 2048
		}
		q.Set("s", strconv.Itoa(size))
	}
	if opts.Default != "" {
		q.Set("d", opts.Default)
	}
	if opts.Rating != "" {
		q.Set("r", opts.Rating)
	}
	return urls.Build(GravatarBase, hex.EncodeToString(sum[:]), q)
}
