package stats

import "time"

// DayWindow returns [start of now's day, start of the next day).
func DayWindow(now time.Time) DateRange {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return DateRange{
		Start: start,
		End:   start.AddDate(0, 0, 1),
	}
}

// TrailingWindow returns [now - days, now).
func TrailingWindow(now time.Time, days int) DateRange {
	return DateRange{
		Start: now.AddDate(0, 0, -days),
		End:   now,
	}
}

// MonthStart returns the first day of now's calendar month at local midnight.
// Month-to-date queries have no upper bound, so no range is returned here.
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
