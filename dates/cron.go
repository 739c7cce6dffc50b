package dates

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// NextRun returns the first activation of a standard five-field cron
// expression (or descriptor such as "@daily") strictly after from.
func NextRun(expr string, from time.Time) (time.Time, error) {
	sched, err := cron.ParseStandard(expr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrCron, expr, err)
	}
	return sched.Next(from), nil
}

// NextRuns returns the next n activations after from.
func NextRuns(expr string, from time.Time, n int) ([]time.Time, error) {
	sched, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCron, expr, err)
	}
	out := make([]time.Time, 0, max(n, 0))
	for t := from; len(out) < n; {
		t = sched.Next(t)
		if t.IsZero() {
			break
		}
		out = append(out, t)
	}
	return out, nil
}
