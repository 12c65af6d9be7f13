package dates

import (
	"testing"
	"time"
)

func TestDayBounds(t *testing.T) {
	at := time.Date(2025, 3, 10, 14, 35, 12, 500, time.Local)
	start, end := DayBounds(at)

	if want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local); !start.Equal(want) {
		t.Fatalf("start=%s, want %s", start, want)
	}
	if !end.Before(time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("end=%s crosses midnight", end)
	}
	if !end.After(time.Date(2025, 3, 10, 23, 59, 59, 0, time.Local)) {
		t.Fatalf("end=%s trims the last second", end)
	}
}

func TestWeekBoundsStartSunday(t *testing.T) {
	// 2025-03-12 is a Wednesday.
	start, end := WeekBounds(time.Date(2025, 3, 12, 10, 0, 0, 0, time.Local))
	if start.Weekday() != time.Sunday {
		t.Fatalf("week starts on %s", start.Weekday())
	}
	if want := time.Date(2025, 3, 9, 0, 0, 0, 0, time.Local); !start.Equal(want) {
		t.Fatalf("start=%s, want %s", start, want)
	}
	if end.Weekday() != time.Saturday {
		t.Fatalf("week ends on %s", end.Weekday())
	}
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(time.Date(2025, 2, 14, 10, 0, 0, 0, time.Local))
	if want := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local); !start.Equal(want) {
		t.Fatalf("start=%s, want %s", start, want)
	}
	if end.Month() != time.February || end.Day() != 28 {
		t.Fatalf("end=%s, want last instant of February", end)
	}
}
