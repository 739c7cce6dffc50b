package number

import (
	"fmt"
	"strings"
)

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Roman converts n in [1,3999] to upper-case Roman numerals.
func Roman(n int) (string, error) {
	if n < 1 || n > 3999 {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	var b strings.Builder
	for _, r := range romanTable {
		for n >= r.value {
			b.WriteString(r.symbol)
			n -= r.value
		}
	}
	return b.String(), nil
}

// FromRoman parses canonical Roman numerals (case-insensitive).
// Non-canonical forms such as "IIII" or "VX" are rejected.
func FromRoman(s string) (int, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	if up == "" {
		return 0, fmt.Errorf("%w: empty numeral", ErrSyntax)
	}
	total, rest := 0, up
	for _, r := range romanTable {
		for strings.HasPrefix(rest, r.symbol) {
			total += r.value
			rest = rest[len(r.symbol):]
		}
	}
	if rest != "" {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	// Round-trip rejects non-canonical spellings.
	if canon, err := Roman(total); err != nil || canon != up {
		return 0, fmt.Errorf("%w: %q is not canonical", ErrSyntax, s)
	}
	return total, nil
}
