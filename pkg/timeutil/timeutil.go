// Package timeutil provides the calendar helpers used for points reporting.
// All bucketing happens in UTC so a completion lands in the same month bucket
// regardless of the server's locale.
// No external dependencies - uses only standard library.
package timeutil

import "time"

// MonthLayout is the wire format for monthly point buckets.
const MonthLayout = "2006-01"

// MonthKey truncates a timestamp to its ISO year-month ("YYYY-MM") in UTC.
func MonthKey(t time.Time) string {
	return t.UTC().Format(MonthLayout)
}

// ParseMonthKey parses a "YYYY-MM" bucket key back into the first instant of
// that month in UTC.
func ParseMonthKey(key string) (time.Time, error) {
	return time.Parse(MonthLayout, key)
}

// StartOfMonth returns the first instant of t's month in UTC.
func StartOfMonth(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}
