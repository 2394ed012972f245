package services

import (
	"math"
	"time"
)

// DateAtLocation truncates a timestamp to midnight in the given location. All
// cycle arithmetic goes through this so intraday clock drift never shifts a
// day count.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// DaysBetween counts calendar days from one date to another after truncation.
// Negative when to precedes from. The division is rounded, not truncated: DST
// transitions make some local days 23 or 25 hours long, and a floor would
// undercount every range spanning a spring-forward night.
func DaysBetween(from time.Time, to time.Time, location *time.Location) int {
	fromDay := DateAtLocation(from, location)
	toDay := DateAtLocation(to, location)
	return int(math.Round(toDay.Sub(fromDay).Hours() / 24))
}

func sameCalendarDay(a time.Time, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

func betweenCalendarDaysInclusive(day time.Time, start time.Time, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	return (day.Equal(start) || day.After(start)) && (day.Equal(end) || day.Before(end))
}
