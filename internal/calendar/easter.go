package calendar

// Easter computes Easter Sunday using the anonymous Gregorian algorithm.
// The year must be valid; results outside the admissible range are undefined.
//
// Operator order matters: every subtraction below stays non-negative for
// admissible years only when evaluated exactly as written.
func Easter(year Year) EasterDate {
	y := uint(year)

	a := y % 19
	b := y / 100
	c := y % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	n := (h + l - 7*m + 114) / 31
	p := (h + l - 7*m + 114) % 31

	return EasterDate{
		Year:  year,
		Month: Month(n),
		Day:   uint8(p + 1),
	}
}

// EasterDates maps every year to its Easter Sunday, keeping order and duplicates
func EasterDates(years []Year) []EasterDate {
	dates := make([]EasterDate, 0, len(years))
	for _, year := range years {
		dates = append(dates, Easter(year))
	}
	return dates
}
