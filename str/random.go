package str

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/lvkit/sanitize"
	"github.com/tidwall/gjson"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Random returns n crypto-random alphanumeric characters.
func Random(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("%w: %d", ErrLength, n)
	}
	var b strings.Builder
	b.Grow(n)
	limit := big.NewInt(int64(len(alphanumeric)))
	for i := 0; i < n; i++ {
		k, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		b.WriteByte(alphanumeric[k.Int64()])
	}
	return b.String(), nil
}

// Plain strips HTML from s and collapses whitespace.
func Plain(s string) string {
	return sanitize.Whitespace(sanitize.StripTags(s))
}

// IsJSON reports whether s is a syntactically valid JSON document.
func IsJSON(s string) bool {
	return gjson.Valid(s)
}
