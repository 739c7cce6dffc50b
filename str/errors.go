package str

import "errors"

var (
	// ErrPattern is returned when a pattern fails to compile or times out.
	ErrPattern = errors.New("str: invalid pattern")

	// ErrLength is returned for negative or zero lengths where a positive
	// one is required.
	ErrLength = errors.New("str: invalid length")
)
