package dateutil

import "time"

// Date returns midnight UTC of the given calendar day
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one
	return Date(year, month+1, 0).Day()
}

// IsSunday returns true if the date is a Sunday
func IsSunday(date time.Time) bool {
	return date.Weekday() == time.Sunday
}

// FormatISODate formats date as YYYY-MM-DD
func FormatISODate(date time.Time) string {
	return date.Format("2006-01-02")
}
