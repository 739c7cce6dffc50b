package number

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	xnumber "golang.org/x/text/number"
)

// Round rounds v half away from zero to precision decimal places.
// Negative precision rounds left of the decimal point (Round(1250, -2) == 1300).
func Round(v float64, precision int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	p := math.Pow(10, float64(precision))
	r := math.Round(v * p)
	// Guard against representation error (1.005*100 == 100.49999...).
	if d := v*p - math.Trunc(v*p); math.Abs(math.Abs(d)-0.5) < 1e-9 {
		r = math.Trunc(v*p) + math.Copysign(1, v)
	}
	return r / p
}

// Format renders v with a fixed number of decimals, decPoint as the
// decimal mark and thousandsSep between digit groups
// (Format(1234.567, 2, ".", ",") == "1,234.57").
func Format(v float64, decimals int, decPoint, thousandsSep string) string {
	if decimals < 0 {
		decimals = 0
	}
	raw := strconv.FormatFloat(math.Abs(Round(v, decimals)), 'f', decimals, 64)
	intPart, frac, _ := strings.Cut(raw, ".")

	var b strings.Builder
	if v < 0 && strings.Trim(raw, "0.") != "" {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(thousandsSep)
		b.WriteString(intPart[i : i+3])
	}
	if decimals > 0 {
		b.WriteString(decPoint)
		b.WriteString(frac)
	}
	return b.String()
}

// FormatLocale renders v with exactly decimals fraction digits using the
// grouping and decimal conventions of tag (German: 1.234,50).
func FormatLocale(v float64, decimals int, tag language.Tag) string {
	if decimals < 0 {
		decimals = 0
	}
	p := message.NewPrinter(tag)
	return p.Sprint(xnumber.Decimal(Round(v, decimals),
		xnumber.MinFractionDigits(decimals),
		xnumber.MaxFractionDigits(decimals),
	))
}

// Comma groups an integer with commas (1234567 → "1,234,567").
func Comma(v int64) string {
	return humanize.Comma(v)
}

// Ordinal appends the English ordinal suffix (1 → "1st", 12 → "12th").
func Ordinal(n int) string {
	return humanize.Ordinal(n)
}

// Bytes renders a size with SI units (1000-based): 82854982 → "83 MB".
func Bytes(n uint64) string {
	return humanize.Bytes(n)
}

// IBytes renders a size with IEC units (1024-based): 82854982 → "79 MiB".
func IBytes(n uint64) string {
	return humanize.IBytes(n)
}

// ParseBytes parses "42 MB", "42MiB" or "1.5 GB" into a byte count.
func ParseBytes(s string) (uint64, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return n, nil
}

var shortUnits = []struct {
	limit  float64
	suffix string
}{
	{1, ""},
	{1e3, "K"},
	{1e6, "M"},
	{1e9, "B"},
	{1e12, "T"},
}

// Short abbreviates large magnitudes with one decimal, dropping a
// trailing ".0": 1250 → "1.3K", 3_400_000 → "3.4M", 999 → "999".
// A value that rounds up to 1000 of a unit moves to the next unit
// (999_950 → "1M").
func Short(v float64) string {
	abs := math.Abs(v)
	i := 0
	for i+1 < len(shortUnits) && abs >= shortUnits[i+1].limit {
		i++
	}
	r := Round(v/shortUnits[i].limit, 1)
	if math.Abs(r) >= 1000 && i+1 < len(shortUnits) {
		i++
		r = Round(v/shortUnits[i].limit, 1)
	}
	s := strconv.FormatFloat(r, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + shortUnits[i].suffix
}

// Percentage returns part/total*100 rounded to decimals.
func Percentage(part, total float64, decimals int) (float64, error) {
	if total == 0 {
		return 0, ErrDivideByZero
	}
	return Round(part/total*100, decimals), nil
}

// Clamp limits v to [lo, hi]. If lo > hi the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	return min(max(v, lo), hi)
}

// Between reports whether lo <= v <= hi.
func Between[T constraints.Ordered](v, lo, hi T) bool {
	return v >= lo && v <= hi
}

// IsEven reports whether n is even.
func IsEven[T constraints.Integer](n T) bool { return n%2 == 0 }

// IsOdd reports whether n is odd.
func IsOdd[T constraints.Integer](n T) bool { return n%2 != 0 }

// Parse converts s to float64, ignoring surrounding spaces, thousands
// commas and underscores ("1,234.50" → 1234.5).
func Parse(s string) (float64, error) {
	clean := strings.NewReplacer(",", "", "_", "", " ", "").Replace(strings.TrimSpace(s))
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil || clean == "" {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return f, nil
}

// ParseOr is Parse returning def on failure.
func ParseOr(s string, def float64) float64 {
	f, err := Parse(s)
	if err != nil {
		return def
	}
	return f
}
