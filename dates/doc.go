// Package dates provides calendar arithmetic and formatting on time.Time.
//
// What:
//
//   - Format accepts Go layouts and PHP formats alike, detecting Go's
//     reference time in the layout.
//   - FormatPHP renders PHP date() format strings ("Y-m-d H:i:s",
//     "l jS \of F Y") so stored format settings keep working.
//   - Parse tries a catalogue of common layouts in a given location.
//   - Boundaries: StartOfDay, EndOfDay, StartOfWeek, StartOfMonth,
//     EndOfMonth, StartOfYear, EndOfYear.
//   - AddMonthsNoOverflow clamps to the last day of the target month
//     (Jan 31 + 1 month = Feb 28/29) instead of spilling into March.
//   - DaysBetween, Age, IsWeekend, IsLeapYear, DaysInMonth, RangeDays.
//   - Ago and HumanDuration produce human-readable spans.
//   - InTimezone converts to an IANA zone by name.
//   - NextRun and NextRuns evaluate standard cron expressions.
//
// Boundaries are computed in the location of the input value.
package dates
