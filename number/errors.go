package number

import "errors"

var (
	// ErrDivideByZero is returned when a ratio has a zero denominator.
	ErrDivideByZero = errors.New("number: division by zero")

	// ErrOutOfRange is returned when a value cannot be represented
	// (e.g. Roman numerals outside 1..3999).
	ErrOutOfRange = errors.New("number: value out of range")

	// ErrSyntax is returned when a string does not hold a number.
	ErrSyntax = errors.New("number: invalid syntax")
)
