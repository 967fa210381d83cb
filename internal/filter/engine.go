package filter

import "github.com/VladimirMikulas/ExampleSpaceXapp/internal/rocket"

// Apply reduces rockets to those matching the selection: a rocket is kept
// iff, for every category with a non-empty selection, it matches at least
// one selected predicate of that category's kind (AND across categories, OR
// within one).
//
// With no active selection the input slice is returned as-is. Output order
// is input order; nothing is reordered or deduplicated.
func Apply(rockets []rocket.Rocket, state State) []rocket.Rocket {
	if !state.Active() {
		return rockets
	}

	result := make([]rocket.Rocket, 0, len(rockets))
	for _, r := range rockets {
		if matchesAll(r, state) {
			result = append(result, r)
		}
	}
	return result
}

func matchesAll(r rocket.Rocket, state State) bool {
	for key, set := range state {
		if len(set) == 0 {
			continue
		}
		if !matchesCategory(r, key, set) {
			return false
		}
	}
	return true
}

// matchesCategory tests a rocket against one category's selection. Each
// category accepts exactly one predicate kind; selections of another kind
// are ignored. A selection left with no usable predicates imposes no
// constraint, as does an unknown category key.
func matchesCategory(r rocket.Rocket, key CategoryKey, set Set) bool {
	switch key {
	case KeyName:
		matched, considered := false, false
		for p := range set {
			e, ok := p.(Exact)
			if !ok {
				continue
			}
			considered = true
			if e.Matches(r.Name) {
				matched = true
				break
			}
		}
		return matched || !considered

	case KeyFirstFlight:
		matched, considered := false, false
		for p := range set {
			y, ok := p.(YearRange)
			if !ok {
				continue
			}
			considered = true
			if y.Matches(r.FirstFlight) {
				matched = true
				break
			}
		}
		return matched || !considered

	case KeyHeight:
		return matchesNumeric(set, r.HeightM)
	case KeyDiameter:
		return matchesNumeric(set, r.DiameterM)
	case KeyMass:
		return matchesNumeric(set, r.MassKg)

	default:
		// Unknown keys impose no constraint.
		return true
	}
}

func matchesNumeric(set Set, v float64) bool {
	matched, considered := false, false
	for p := range set {
		rng, ok := p.(Range)
		if !ok {
			continue
		}
		considered = true
		if rng.Matches(v) {
			matched = true
			break
		}
	}
	return matched || !considered
}
