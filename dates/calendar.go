package dates

import (
	"fmt"
	"time"
)

// StartOfDay returns 00:00:00 of t's day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfWeek returns the start of the week containing t, where weeks
// begin on weekStart.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	offset := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return StartOfDay(t).AddDate(0, 0, -offset)
}

// StartOfMonth returns the first instant of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// StartOfYear returns the first instant of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// EndOfYear returns the last nanosecond of t's year.
func EndOfYear(t time.Time) time.Time {
	return StartOfYear(t).AddDate(1, 0, 0).Add(-time.Nanosecond)
}

// DaysInMonth returns the number of days in month m of year y.
func DaysInMonth(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeapYear reports whether y is a Gregorian leap year.
func IsLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AddMonthsNoOverflow adds n months, clamping the day to the end of the
// target month.
func AddMonthsNoOverflow(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()).AddDate(0, n, 0)
	last := DaysInMonth(first.Year(), first.Month())
	return first.AddDate(0, 0, min(d, last)-1)
}

// DaysBetween counts calendar days from a to b (negative when b < a),
// ignoring the time of day. b is first converted into a's location.
func DaysBetween(a, b time.Time) int {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// Age returns full years elapsed from birth to now.
func Age(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || now.Month() == birth.Month() && now.Day() < birth.Day() {
		years--
	}
	return max(years, 0)
}

// RangeDays returns every day from `from` to `to` inclusive, stepping
// every days at a time. Times keep the wall clock of from.
func RangeDays(from, to time.Time, every int) ([]time.Time, error) {
	if every <= 0 {
		return nil, fmt.Errorf("%w: step %d", ErrBadRange, every)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: %s is before %s", ErrBadRange, to.Format(time.DateOnly), from.Format(time.DateOnly))
	}
	var out []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, every) {
		out = append(out, d)
	}
	return out, nil
}

// InTimezone converts t to the IANA zone name ("Europe/Kyiv").
func InTimezone(t time.Time, name string) (time.Time, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrTimezone, name)
	}
	return t.In(loc), nil
}
