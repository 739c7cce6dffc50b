package dates

import "errors"

var (
	// ErrUnknownFormat is returned when no known layout parses the input.
	ErrUnknownFormat = errors.New("dates: unrecognised date format")

	// ErrBadRange is returned for inverted ranges or non-positive steps.
	ErrBadRange = errors.New("dates: invalid range")

	// ErrTimezone is returned when a zone name cannot be loaded.
	ErrTimezone = errors.New("dates: unknown timezone")

	// ErrCron is returned when a cron expression does not parse.
	ErrCron = errors.New("dates: invalid cron expression")
)
