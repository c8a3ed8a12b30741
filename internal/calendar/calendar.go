package calendar

import (
	"fmt"
	"time"

	"github.com/username/easter-report/pkg/dateutil"
)

// Admissible year bounds (exclusive)
const (
	FirstYearExclusive Year = 1582
	LastYearExclusive  Year = 2200
)

// Year represents a Gregorian year
type Year uint

// Valid reports whether the year lies strictly between 1582 and 2200
func (y Year) Valid() bool {
	return FirstYearExclusive < y && y < LastYearExclusive
}

// Month is the month Easter Sunday falls in
type Month uint8

const (
	March Month = 3
	April Month = 4
)

// String returns the month name used in reports
func (m Month) String() string {
	switch m {
	case March:
		return "brezen"
	case April:
		return "duben"
	default:
		return fmt.Sprintf("Month(%d)", uint8(m))
	}
}

// EasterDate represents Easter Sunday of a given year
type EasterDate struct {
	Year  Year
	Month Month
	Day   uint8
}

// Time returns the date at midnight UTC
func (d EasterDate) Time() time.Time {
	return dateutil.Date(int(d.Year), time.Month(d.Month), int(d.Day))
}

func (d EasterDate) String() string {
	return fmt.Sprintf("%d. %s %d", d.Day, d.Month, d.Year)
}
