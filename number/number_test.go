package number_test

import (
	"testing"

	"github.com/katalvlaran/lvkit/number"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// TestRound checks half-away-from-zero rounding and representation error.
func TestRound(t *testing.T) {
	cases := []struct {
		v    float64
		p    int
		want float64
	}{
		{1.005, 2, 1.01},
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{1.2345, 3, 1.235},
		{1250, -2, 1300},
		{-0.4, 0, 0},
		{3.14159, 0, 3},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, number.Round(tc.v, tc.p), 1e-9, "Round(%v,%d)", tc.v, tc.p)
	}
}

// TestFormat mirrors number_format behaviour.
func TestFormat(t *testing.T) {
	assert.Equal(t, "1,234.57", number.Format(1234.567, 2, ".", ","))
	assert.Equal(t, "1 000 000", number.Format(1e6, 0, ".", " "))
	assert.Equal(t, "-1.234,50", number.Format(-1234.5, 2, ",", "."))
	assert.Equal(t, "0.00", number.Format(-0.001, 2, ".", ","))
	assert.Equal(t, "999", number.Format(999, 0, ".", ","))
	assert.Equal(t, "12", number.Format(12.4, -1, ".", ","))
}

// TestFormatLocale uses CLDR conventions.
func TestFormatLocale(t *testing.T) {
	assert.Equal(t, "1,234.50", number.FormatLocale(1234.5, 2, language.English))
	assert.Equal(t, "1.234,50", number.FormatLocale(1234.5, 2, language.German))
}

// TestHumanForms covers humanize-backed helpers.
func TestHumanForms(t *testing.T) {
	assert.Equal(t, "1,234,567", number.Comma(1234567))
	assert.Equal(t, "1st", number.Ordinal(1))
	assert.Equal(t, "12th", number.Ordinal(12))
	assert.Equal(t, "23rd", number.Ordinal(23))
	assert.Equal(t, "83 MB", number.Bytes(82854982))
	assert.Equal(t, "79 MiB", number.IBytes(82854982))

	n, err := number.ParseBytes("42 MB")
	require.NoError(t, err)
	assert.Equal(t, uint64(42000000), n)
	_, err = number.ParseBytes("lots")
	assert.ErrorIs(t, err, number.ErrSyntax)
}

// TestShort checks compact magnitudes.
func TestShort(t *testing.T) {
	assert.Equal(t, "999", number.Short(999))
	assert.Equal(t, "1.3K", number.Short(1250))
	assert.Equal(t, "3.4M", number.Short(3_400_000))
	assert.Equal(t, "5B", number.Short(5e9))
	assert.Equal(t, "-1.5K", number.Short(-1500))
	assert.Equal(t, "12.5", number.Short(12.5))

	// Rounding up across a unit boundary promotes the unit.
	assert.Equal(t, "1M", number.Short(999_950))
	assert.Equal(t, "1M", number.Short(999_999))
	assert.Equal(t, "1K", number.Short(999.96))
	assert.Equal(t, "-1B", number.Short(-999_999_999))
}

// TestPercentageClamp covers ratio and bounds helpers.
func TestPercentageClamp(t *testing.T) {
	p, err := number.Percentage(1, 3, 2)
	require.NoError(t, err)
	assert.InDelta(t, 33.33, p, 1e-9)
	_, err = number.Percentage(1, 0, 2)
	assert.ErrorIs(t, err, number.ErrDivideByZero)

	assert.Equal(t, 10, number.Clamp(15, 0, 10))
	assert.Equal(t, 0, number.Clamp(-5, 10, 0), "swapped bounds")
	assert.InDelta(t, 0.5, number.Clamp(0.5, 0.0, 1.0), 1e-12)
	assert.True(t, number.Between(5, 1, 5))
	assert.False(t, number.Between("z", "a", "m"))
	assert.True(t, number.IsEven(4))
	assert.True(t, number.IsOdd(int8(-3)))
}

// TestParse tolerates separators and whitespace.
func TestParse(t *testing.T) {
	f, err := number.Parse(" 1,234.50 ")
	require.NoError(t, err)
	assert.InDelta(t, 1234.5, f, 1e-12)

	_, err = number.Parse("abc")
	assert.ErrorIs(t, err, number.ErrSyntax)
	_, err = number.Parse("   ")
	assert.ErrorIs(t, err, number.ErrSyntax)
	assert.InDelta(t, 7.0, number.ParseOr("seven", 7), 1e-12)
}

// TestRoman round-trips 1..3999 and rejects bad input.
func TestRoman(t *testing.T) {
	s, err := number.Roman(1994)
	require.NoError(t, err)
	assert.Equal(t, "MCMXCIV", s)

	for n := 1; n <= 3999; n++ {
		r, err := number.Roman(n)
		require.NoError(t, err)
		back, err := number.FromRoman(r)
		require.NoError(t, err)
		require.Equal(t, n, back)
	}

	_, err = number.Roman(0)
	assert.ErrorIs(t, err, number.ErrOutOfRange)
	_, err = number.Roman(4000)
	assert.ErrorIs(t, err, number.ErrOutOfRange)

	v, err := number.FromRoman("xiv")
	require.NoError(t, err)
	assert.Equal(t, 14, v)
	for _, bad := range []string{"IIII", "VX", "ABC", ""} {
		_, err = number.FromRoman(bad)
		assert.ErrorIs(t, err, number.ErrSyntax, bad)
	}
}
