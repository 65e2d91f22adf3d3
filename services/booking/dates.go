package booking

import "time"

const day = 24 * time.Hour

// startOfDay keeps the calendar date of t, read in t's own location, and
// returns it as midnight UTC.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dayWindow returns the half-open interval covering the days of from..to.
func dayWindow(from, to time.Time) (time.Time, time.Time) {
	return startOfDay(from), startOfDay(to).Add(day)
}
