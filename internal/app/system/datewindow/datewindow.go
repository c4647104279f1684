// Package datewindow implements the calendar-day visibility window used
// by announcements: a record is visible from its start date (if any)
// through the end of its end date, inclusive on both sides.
//
// Dates travel through the system as plain "YYYY-MM-DD" strings; this
// package is the one place that parses and compares them.
package datewindow

import "time"

// Layout is the wire and storage format for window dates.
const Layout = "2006-01-02"

// FarFuture sorts after every real end date. Used as the sort key for
// records with no end date so they land at the tail of active lists.
const FarFuture = "9999-12-31"

// Parse parses a "YYYY-MM-DD" string. It returns ok=false for the empty
// string and for anything time.Parse rejects.
func Parse(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(Layout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Active reports whether a window with the given start (nil means no
// lower bound) and end dates includes the day of `today`. A missing or
// unparseable end date means the window is never active; an unparseable
// start date is ignored, matching how the records were validated on the
// way in.
func Active(start *string, end string, today time.Time) bool {
	endDay, ok := Parse(end)
	if !ok {
		return false
	}
	day := Day(today)
	if start != nil {
		if startDay, ok := Parse(*start); ok && day.Before(startDay) {
			return false
		}
	}
	return !day.After(endDay)
}

// Day truncates a time to its UTC calendar day, the granularity all
// window comparisons happen at.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SortKey returns the value active lists order by: the end date itself,
// or FarFuture when the record has none.
func SortKey(end string) string {
	if end == "" {
		return FarFuture
	}
	return end
}
