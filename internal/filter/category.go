package filter

import (
	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/rocket"
	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/text"
)

// CategoryKey identifies a filterable dimension of a rocket.
type CategoryKey string

// The filterable dimensions. Each key is bound to exactly one predicate
// kind - see matchesCategory.
const (
	KeyName        CategoryKey = "name"
	KeyFirstFlight CategoryKey = "first_flight"
	KeyHeight      CategoryKey = "height"
	KeyDiameter    CategoryKey = "diameter"
	KeyMass        CategoryKey = "mass"
)

// Category is one filterable dimension together with the predicates the
// current dataset makes available. Categories are rebuilt whenever the
// rocket collection changes, never mutated in place.
type Category struct {
	Key        CategoryKey
	Label      text.Handle
	Unit       text.Handle // zero handle when the dimension has no unit
	Predicates []Predicate
}

// BuildCategories derives the available filter options from a rocket
// collection. A dimension with no usable values (empty collection, or no
// parsable first-flight dates) yields a category with no predicates, which
// the engine treats as "no filter options", not as an error.
func BuildCategories(rockets []rocket.Rocket) []Category {
	names := make([]Predicate, 0, len(rockets))
	seen := make(map[string]bool, len(rockets))
	dates := make([]string, 0, len(rockets))
	heights := make([]float64, 0, len(rockets))
	diameters := make([]float64, 0, len(rockets))
	masses := make([]float64, 0, len(rockets))

	for _, r := range rockets {
		if !seen[r.Name] {
			seen[r.Name] = true
			names = append(names, NewExact(r.Name))
		}
		dates = append(dates, r.FirstFlight)
		heights = append(heights, r.HeightM)
		diameters = append(diameters, r.DiameterM)
		masses = append(masses, r.MassKg)
	}

	return []Category{
		{
			Key:        KeyName,
			Label:      text.New(text.KeyCategoryName),
			Predicates: names,
		},
		{
			Key:        KeyFirstFlight,
			Label:      text.New(text.KeyCategoryFirstFlight),
			Predicates: yearBuckets(dates),
		},
		{
			Key:        KeyHeight,
			Label:      text.New(text.KeyCategoryHeight),
			Unit:       text.New(text.KeyUnitMeters),
			Predicates: numericBuckets(heights),
		},
		{
			Key:        KeyDiameter,
			Label:      text.New(text.KeyCategoryDiameter),
			Unit:       text.New(text.KeyUnitMeters),
			Predicates: numericBuckets(diameters),
		},
		{
			Key:        KeyMass,
			Label:      text.New(text.KeyCategoryMass),
			Unit:       text.New(text.KeyUnitKilograms),
			Predicates: numericBuckets(masses),
		},
	}
}

func numericBuckets(values []float64) []Predicate {
	info, ok := NumericRangeInfo(values)
	if !ok {
		return nil
	}
	return info.Buckets()
}

func yearBuckets(dates []string) []Predicate {
	info, ok := YearRangeInfo(dates)
	if !ok {
		return nil
	}
	return info.Buckets()
}
