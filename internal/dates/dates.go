// Package dates computes the inclusive day/week/month bounds used by
// "today" and report-period queries. Bounds are local time: the stall's
// business day is the owner's wall-clock day.
package dates

import "time"

// DayBounds returns local midnight and the last instant of t's day.
func DayBounds(t time.Time) (start, end time.Time) {
	y, m, d := t.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	end = start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}

// WeekBounds returns the bounds of t's week, Sunday through Saturday.
func WeekBounds(t time.Time) (start, end time.Time) {
	dayStart, _ := DayBounds(t)
	start = dayStart.AddDate(0, 0, -int(dayStart.Weekday()))
	end = start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return start, end
}

// MonthBounds returns the first and last instant of t's month.
func MonthBounds(t time.Time) (start, end time.Time) {
	y, m, _ := t.Date()
	start = time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}
