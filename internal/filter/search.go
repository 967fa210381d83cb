package filter

import (
	"strings"

	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/rocket"
)

// Search returns the rockets whose name contains query as a case-insensitive
// substring, preserving order. A blank query returns the input slice as-is.
func Search(rockets []rocket.Rocket, query string) []rocket.Rocket {
	if strings.TrimSpace(query) == "" {
		return rockets
	}

	q := strings.ToLower(query)
	result := make([]rocket.Rocket, 0, len(rockets))
	for _, r := range rockets {
		if strings.Contains(strings.ToLower(r.Name), q) {
			result = append(result, r)
		}
	}
	return result
}
