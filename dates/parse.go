package dates

import (
	"fmt"
	"strings"
	"time"
)

// Layouts is the ordered list of layouts Parse tries. Day-first numeric
// forms use "." or "-" separators; slash-separated numeric dates are
// read month-first.
var Layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateTime,
	"2006-01-02 15:04",
	time.DateOnly,
	"2006/01/02",
	"02.01.2006 15:04:05",
	"02.01.2006",
	"02-01-2006",
	"01/02/2006 15:04:05",
	"01/02/2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC850,
	time.ANSIC,
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"20060102",
}

// Parse interprets value with the first matching entry of Layouts.
// Values without zone information are placed in loc (UTC when nil).
func Parse(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	v := strings.TrimSpace(value)
	for _, layout := range Layouts {
		if t, err := time.ParseInLocation(layout, v, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownFormat, value)
}
