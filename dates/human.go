package dates

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Ago describes t relative to now: "3 hours ago", "2 days from now",
// "now".
func Ago(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

var durationUnits = []struct {
	d    time.Duration
	name string
}{
	{24 * time.Hour, "day"},
	{time.Hour, "hour"},
	{time.Minute, "minute"},
	{time.Second, "second"},
}

// HumanDuration spells d out with at most parts units, largest first:
// HumanDuration(26*time.Hour+5*time.Minute, 2) == "1 day 2 hours".
// Durations under one second render as "0 seconds". Sign is ignored.
func HumanDuration(d time.Duration, parts int) string {
	if d < 0 {
		d = -d
	}
	if parts <= 0 {
		parts = len(durationUnits)
	}
	var out []string
	for _, u := range durationUnits {
		if len(out) == parts {
			break
		}
		n := d / u.d
		if n == 0 {
			continue
		}
		d -= n * u.d
		label := u.name
		if n != 1 {
			label += "s"
		}
		out = append(out, strconv.FormatInt(int64(n), 10)+" "+label)
	}
	if len(out) == 0 {
		return "0 seconds"
	}
	return strings.Join(out, " ")
}
