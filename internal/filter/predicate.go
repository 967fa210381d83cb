// Package filter implements the search and filter evaluation engine.
// All functions are pure: []Rocket in, []Rocket out. No side effects, no
// errors - malformed input degrades to "no match" or identity passthrough.
package filter

import (
	"strings"

	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/text"
)

// Predicate is one concrete condition a rocket is tested against. The set
// of implementations is closed: Exact, Range and YearRange.
//
// Predicates are plain comparable values. Two predicates are the same
// selection iff they are equal, which is what FilterState relies on.
type Predicate interface {
	// Label returns the display handle for this predicate.
	Label() text.Handle

	predicate() // closed set marker
}

// Exact matches a string field by case-insensitive equality.
type Exact struct {
	Text  text.Handle
	Value string
}

// NewExact creates an exact-match predicate for value, labeled with the
// value itself.
func NewExact(value string) Exact {
	return Exact{Text: text.Raw(value), Value: value}
}

func (e Exact) Label() text.Handle { return e.Text }
func (e Exact) predicate()         {}

// Matches reports whether s equals the predicate value, ignoring case.
func (e Exact) Matches(s string) bool {
	return strings.EqualFold(s, e.Value)
}

// Range matches a numeric value against an inclusive range. Either bound
// may be absent; a range with both bounds absent matches nothing.
type Range struct {
	Text     text.Handle
	Start    float64
	End      float64
	HasStart bool
	HasEnd   bool
}

// RangeFrom creates a range bounded below only.
func RangeFrom(label text.Handle, start float64) Range {
	return Range{Text: label, Start: start, HasStart: true}
}

// RangeTo creates a range bounded above only.
func RangeTo(label text.Handle, end float64) Range {
	return Range{Text: label, End: end, HasEnd: true}
}

// RangeBetween creates a range bounded on both sides.
func RangeBetween(label text.Handle, start, end float64) Range {
	return Range{Text: label, Start: start, End: end, HasStart: true, HasEnd: true}
}

func (r Range) Label() text.Handle { return r.Text }
func (r Range) predicate()         {}

// Matches reports whether v lies in the range, inclusive on both ends.
// NaN never matches: comparisons against NaN are false and that result is
// kept as-is.
func (r Range) Matches(v float64) bool {
	switch {
	case r.HasStart && r.HasEnd:
		return v >= r.Start && v <= r.End
	case r.HasStart:
		return v >= r.Start
	case r.HasEnd:
		return v <= r.End
	default:
		// Both bounds absent is a construction error; match nothing.
		return false
	}
}

// YearRange matches the year extracted from a date string against an
// inclusive year range. Same bound conventions as Range.
type YearRange struct {
	Text     text.Handle
	Start    int
	End      int
	HasStart bool
	HasEnd   bool
}

// YearFrom creates a year range bounded below only.
func YearFrom(label text.Handle, start int) YearRange {
	return YearRange{Text: label, Start: start, HasStart: true}
}

// YearTo creates a year range bounded above only.
func YearTo(label text.Handle, end int) YearRange {
	return YearRange{Text: label, End: end, HasEnd: true}
}

// YearBetween creates a year range bounded on both sides.
func YearBetween(label text.Handle, start, end int) YearRange {
	return YearRange{Text: label, Start: start, End: end, HasStart: true, HasEnd: true}
}

func (y YearRange) Label() text.Handle { return y.Text }
func (y YearRange) predicate()         {}

// MatchesYear reports whether the year lies in the range, inclusive.
func (y YearRange) MatchesYear(year int) bool {
	switch {
	case y.HasStart && y.HasEnd:
		return year >= y.Start && year <= y.End
	case y.HasStart:
		return year >= y.Start
	case y.HasEnd:
		return year <= y.End
	default:
		return false
	}
}

// Matches extracts a year from date and tests it against the range.
// Dates the year cannot be extracted from never match.
func (y YearRange) Matches(date string) bool {
	year, ok := YearOf(date)
	if !ok {
		return false
	}
	return y.MatchesYear(year)
}
