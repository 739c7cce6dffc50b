// SPDX-License-Identifier: MIT

package stats

import "errors"

var (
	// ErrEmpty is returned when a statistic needs at least one value.
	ErrEmpty = errors.New("stats: empty input")

	// ErrTooFew is returned when a sample statistic has fewer than two values.
	ErrTooFew = errors.New("stats: need at least two values")

	// ErrBadBins is returned for a histogram bin count below one.
	ErrBadBins = errors.New("stats: bin count must be positive")

	// ErrPercentile is returned for percentiles outside [0, 100] or NaN.
	ErrPercentile = errors.New("stats: percentile must be within [0, 100]")

	// ErrLengthMismatch is returned when paired series differ in length.
	ErrLengthMismatch = errors.New("stats: series lengths differ")
)
