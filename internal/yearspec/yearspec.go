// Package yearspec parses year specifications such as "2012,2013,2015-2020".
package yearspec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/username/easter-report/internal/calendar"
)

// ErrInvalidInput is wrapped by every parse failure
var ErrInvalidInput = errors.New("invalid year specification")

const (
	tokenSeparator = ","
	rangeSeparator = "-"
)

// Parse turns a specification into years in the order given.
// Ranges expand ascending and duplicates are kept.
//
// A single whitespace character right after a comma is skipped. Any other
// non-digit character inside a token is rejected.
func Parse(spec string) ([]calendar.Year, error) {
	var years []calendar.Year

	for i, token := range strings.Split(spec, tokenSeparator) {
		if i > 0 {
			token = skipSeparatorSpace(token)
		}

		expanded, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		years = append(years, expanded...)
	}

	return years, nil
}

func parseToken(token string) ([]calendar.Year, error) {
	left, right, isRange := strings.Cut(token, rangeSeparator)
	if !isRange {
		year, err := parseYear(token)
		if err != nil {
			return nil, err
		}
		return []calendar.Year{year}, nil
	}

	begin, err := parseYear(left)
	if err != nil {
		return nil, err
	}
	end, err := parseYear(right)
	if err != nil {
		return nil, err
	}
	if begin > end {
		return nil, fmt.Errorf("%w: range %q is inverted", ErrInvalidInput, token)
	}

	years := make([]calendar.Year, 0, end-begin+1)
	for y := begin; y <= end; y++ {
		years = append(years, y)
	}
	return years, nil
}

func parseYear(s string) (calendar.Year, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty year", ErrInvalidInput)
	}
	if !isDigits(s) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidInput, s, err)
	}

	year := calendar.Year(v)
	if uint64(year) != v || !year.Valid() {
		return 0, fmt.Errorf("%w: year %s out of range (%d, %d)",
			ErrInvalidInput, s, calendar.FirstYearExclusive, calendar.LastYearExclusive)
	}

	return year, nil
}

func skipSeparatorSpace(token string) string {
	if token != "" && isSpace(token[0]) {
		return token[1:]
	}
	return token
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
