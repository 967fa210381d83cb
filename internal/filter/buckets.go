package filter

import "github.com/VladimirMikulas/ExampleSpaceXapp/internal/text"

// RangeInfo describes how a numeric collection partitions into buckets.
type RangeInfo struct {
	Min  float64
	Max  float64
	Step float64 // (Max - Min) / 3
}

// NumericRangeInfo computes bucket boundaries for a numeric collection.
// Returns false for an empty collection. A collection where all values are
// equal yields Step 0, which is allowed: callers then produce three buckets
// with identical boundaries.
func NumericRangeInfo(values []float64) (RangeInfo, bool) {
	if len(values) == 0 {
		return RangeInfo{}, false
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return RangeInfo{Min: min, Max: max, Step: (max - min) / 3}, true
}

// YearInfo describes how a collection of dates partitions into year buckets.
type YearInfo struct {
	Min  int
	Max  int
	Step int // (Max - Min) / 3, truncated - no fractional years
}

// YearRangeInfo computes year bucket boundaries for a collection of
// day.month.year date strings. Dates the year cannot be extracted from are
// discarded. Returns false when no date yields a year.
func YearRangeInfo(dates []string) (YearInfo, bool) {
	years := make([]int, 0, len(dates))
	for _, d := range dates {
		if y, ok := YearOf(d); ok {
			years = append(years, y)
		}
	}
	if len(years) == 0 {
		return YearInfo{}, false
	}

	min, max := years[0], years[0]
	for _, y := range years[1:] {
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}

	return YearInfo{Min: min, Max: max, Step: (max - min) / 3}, true
}

// Buckets derives the three standard predicates from the info:
// under (min+step), between (min+step) and (max-step), over (max-step).
//
// A value sitting exactly on min+step or max-step matches two adjacent
// buckets. That overlap is the established convention - selections within a
// category are OR-ed, so "fixing" it would change which rockets a selection
// returns.
func (info RangeInfo) Buckets() []Predicate {
	lo := info.Min + info.Step
	hi := info.Max - info.Step

	return []Predicate{
		RangeTo(text.New(text.KeyFilterUnder, text.Number(lo)), lo),
		RangeBetween(text.New(text.KeyFilterBetween, text.Number(lo), text.Number(hi)), lo, hi),
		RangeFrom(text.New(text.KeyFilterOver, text.Number(hi)), hi),
	}
}

// Buckets derives the three standard year predicates from the info. Same
// boundary-overlap convention as the numeric variant.
func (info YearInfo) Buckets() []Predicate {
	lo := info.Min + info.Step
	hi := info.Max - info.Step

	return []Predicate{
		YearTo(text.New(text.KeyFilterUnder, text.Year(lo)), lo),
		YearBetween(text.New(text.KeyFilterBetween, text.Year(lo), text.Year(hi)), lo, hi),
		YearFrom(text.New(text.KeyFilterOver, text.Year(hi)), hi),
	}
}
