// Package rocket defines the domain type for a SpaceX rocket.
package rocket

// Rocket is a single rocket from the SpaceX catalog.
// IMPORTANT: Rockets are created by the fetch layer and never mutated after.
type Rocket struct {
	ID          string
	Name        string
	FirstFlight string // locale-fixed day.month.year, e.g. "24.03.2006"
	HeightM     float64
	DiameterM   float64
	MassKg      float64
	Country     string
	Description string
	Active      bool
}
