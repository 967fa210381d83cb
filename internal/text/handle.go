// Package text provides opaque display-text handles.
//
// The rest of the application never builds user-facing strings directly.
// It constructs handles with raw parameters; the rendering layer resolves
// them against a catalog at display time. This keeps the core independent
// of the display language.
package text

import (
	"strconv"
	"strings"
)

// Key identifies a catalog entry.
type Key string

// Catalog keys used by the application.
const (
	// KeyRaw passes its first argument through unchanged. Used for values
	// that are display text already (e.g. a rocket name).
	KeyRaw Key = "raw"

	KeyFilterUnder   Key = "filter_under"
	KeyFilterBetween Key = "filter_between"
	KeyFilterOver    Key = "filter_over"

	KeyCategoryName        Key = "category_name"
	KeyCategoryFirstFlight Key = "category_first_flight"
	KeyCategoryHeight      Key = "category_height"
	KeyCategoryDiameter    Key = "category_diameter"
	KeyCategoryMass        Key = "category_mass"

	KeyUnitMeters    Key = "unit_meters"
	KeyUnitKilograms Key = "unit_kilograms"
)

// Handle is an unresolved piece of display text: a catalog key plus up to
// two pre-formatted arguments. Handles are comparable so they can take part
// in predicate value equality.
type Handle struct {
	Key  Key
	Args [2]string
}

// New creates a handle for key with the given arguments.
// Arguments beyond the second are dropped.
func New(key Key, args ...string) Handle {
	h := Handle{Key: key}
	for i, a := range args {
		if i >= len(h.Args) {
			break
		}
		h.Args[i] = a
	}
	return h
}

// Raw wraps an already-displayable string in a handle.
func Raw(s string) Handle {
	return New(KeyRaw, s)
}

// Catalog maps keys to display templates. Templates reference arguments as
// {0} and {1}.
type Catalog map[Key]string

// English is the default catalog.
var English = Catalog{
	KeyRaw: "{0}",

	KeyFilterUnder:   "under {0}",
	KeyFilterBetween: "between {0} and {1}",
	KeyFilterOver:    "over {0}",

	KeyCategoryName:        "Name",
	KeyCategoryFirstFlight: "First flight",
	KeyCategoryHeight:      "Height",
	KeyCategoryDiameter:    "Diameter",
	KeyCategoryMass:        "Mass",

	KeyUnitMeters:    "m",
	KeyUnitKilograms: "kg",
}

// Resolve renders the handle against a catalog. A missing key falls back to
// the key itself so problems are visible rather than silent blanks.
func (h Handle) Resolve(c Catalog) string {
	if h.Key == "" {
		return ""
	}
	tmpl, ok := c[h.Key]
	if !ok {
		return string(h.Key)
	}
	out := strings.ReplaceAll(tmpl, "{0}", h.Args[0])
	return strings.ReplaceAll(out, "{1}", h.Args[1])
}

// Number formats a measurement for display with one decimal place.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Year formats an integer year for display.
func Year(y int) string {
	return strconv.Itoa(y)
}
