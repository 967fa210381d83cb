package filter

import "strings"

// YearOf extracts the 4-digit year from a day.month.year date string such
// as "24.03.2006". It only consumes the year field: day and month are not
// validated. Returns false for anything else.
func YearOf(date string) (int, bool) {
	parts := strings.Split(date, ".")
	if len(parts) != 3 {
		return 0, false
	}
	return parseYear(parts[2])
}

// parseYear accepts exactly four ASCII digits.
func parseYear(s string) (int, bool) {
	if len(s) != 4 {
		return 0, false
	}
	year := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		year = year*10 + int(c-'0')
	}
	return year, true
}
