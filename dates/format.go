package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// goLayoutMarkers are fragments of Go's reference time that never occur
// in a PHP date() format.
var goLayoutMarkers = []string{
	"2006", "Jan", "Mon", "15:04", "3:04", "04:05",
	"01/02", "01-02", "02-01", "02/01", "Z07", "-0700", "-07:00", "MST",
}

// IsGoLayout reports whether layout is written against Go's reference
// time (Mon Jan 2 15:04:05 MST 2006) rather than PHP tokens.
func IsGoLayout(layout string) bool {
	for _, m := range goLayoutMarkers {
		if strings.Contains(layout, m) {
			return true
		}
	}
	return false
}

// Format renders t with either a Go layout ("2006-01-02", time.RFC3339)
// or a PHP date() format ("Y-m-d H:i:s").
func Format(t time.Time, layout string) string {
	if IsGoLayout(layout) {
		return t.Format(layout)
	}
	return FormatPHP(t, layout)
}

// FormatPHP renders t using PHP date() format characters.
// A backslash escapes the next character; unknown characters are copied.
//
// Supported: d D j l N S w z W F m M n t L o Y y a A g G h H i s u v
// e T P p O Z c r U.
func FormatPHP(t time.Time, format string) string {
	var b strings.Builder
	b.Grow(len(format) * 2)
	rs := []rune(format)
	for i := 0; i < len(rs); i++ {
		c := rs[i]
		if c == '\\' {
			if i+1 < len(rs) {
				i++
				b.WriteRune(rs[i])
			}
			continue
		}
		b.WriteString(phpToken(t, c))
	}
	return b.String()
}

func phpToken(t time.Time, c rune) string {
	switch c {
	// Day
	case 'd':
		return pad2(t.Day())
	case 'D':
		return t.Format("Mon")
	case 'j':
		return strconv.Itoa(t.Day())
	case 'l':
		return t.Weekday().String()
	case 'N':
		return strconv.Itoa(isoWeekday(t))
	case 'S':
		return ordinalSuffix(t.Day())
	case 'w':
		return strconv.Itoa(int(t.Weekday()))
	case 'z':
		return strconv.Itoa(t.YearDay() - 1)
	// Week
	case 'W':
		_, w := t.ISOWeek()
		return pad2(w)
	// Month
	case 'F':
		return t.Month().String()
	case 'm':
		return pad2(int(t.Month()))
	case 'M':
		return t.Format("Jan")
	case 'n':
		return strconv.Itoa(int(t.Month()))
	case 't':
		return strconv.Itoa(DaysInMonth(t.Year(), t.Month()))
	// Year
	case 'L':
		if IsLeapYear(t.Year()) {
			return "1"
		}
		return "0"
	case 'o':
		y, _ := t.ISOWeek()
		return strconv.Itoa(y)
	case 'Y':
		return strconv.Itoa(t.Year())
	case 'y':
		return t.Format("06")
	// Time
	case 'a':
		return t.Format("pm")
	case 'A':
		return t.Format("PM")
	case 'g':
		return t.Format("3")
	case 'G':
		return strconv.Itoa(t.Hour())
	case 'h':
		return t.Format("03")
	case 'H':
		return pad2(t.Hour())
	case 'i':
		return pad2(t.Minute())
	case 's':
		return pad2(t.Second())
	case 'u':
		return fmt.Sprintf("%06d", t.Nanosecond()/1e3)
	case 'v':
		return fmt.Sprintf("%03d", t.Nanosecond()/1e6)
	// Timezone
	case 'e':
		return t.Location().String()
	case 'T':
		return t.Format("MST")
	case 'P':
		return t.Format("-07:00")
	case 'p':
		if _, off := t.Zone(); off == 0 {
			return "Z"
		}
		return t.Format("-07:00")
	case 'O':
		return t.Format("-0700")
	case 'Z':
		_, off := t.Zone()
		return strconv.Itoa(off)
	// Full date/time
	case 'c':
		return t.Format("2006-01-02T15:04:05-07:00")
	case 'r':
		return t.Format("Mon, 02 Jan 2006 15:04:05 -0700")
	case 'U':
		return strconv.FormatInt(t.Unix(), 10)
	}
	return string(c)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// isoWeekday maps Monday..Sunday to 1..7.
func isoWeekday(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}

func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
