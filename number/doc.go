// Package number formats, rounds and converts numeric values.
//
// It merges what used to be two near-identical helpers into one
// consistent set:
//
//   - Format: number_format style fixed decimals with custom separators.
//   - FormatLocale: locale-aware grouping and decimal marks.
//   - Round: half-away-from-zero rounding to a decimal precision
//     (negative precision rounds to tens, hundreds, ...).
//   - Clamp, Between, IsEven, IsOdd, Percentage.
//   - Bytes, IBytes, ParseBytes, Ordinal, Comma: human-readable forms.
//   - Short: compact magnitudes (1.2K, 3.4M, 5B).
//   - Roman / FromRoman: conversions for 1..3999.
//   - Parse: tolerant string → float parsing ("1,234.50", " 42 ").
package number
