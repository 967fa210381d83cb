package filter

// Set is an unordered collection of selected predicates. Membership is by
// value equality.
type Set map[Predicate]struct{}

// NewSet creates a set containing the given predicates.
func NewSet(preds ...Predicate) Set {
	s := make(Set, len(preds))
	for _, p := range preds {
		s[p] = struct{}{}
	}
	return s
}

// Has reports whether p is in the set.
func (s Set) Has(p Predicate) bool {
	_, ok := s[p]
	return ok
}

// State maps each category to its currently selected predicates. An empty
// set - or a missing key - means no constraint on that category; the two
// are interchangeable.
type State map[CategoryKey]Set

// NewState returns an empty selection.
func NewState() State {
	return State{}
}

// Toggle returns a new state with p selected or deselected under key. The
// receiver is left unchanged; inner sets are copied, not aliased.
// Deselecting the last predicate leaves an empty set under the key rather
// than removing it.
func (s State) Toggle(key CategoryKey, p Predicate, selected bool) State {
	next := make(State, len(s)+1)
	for k, set := range s {
		copied := make(Set, len(set))
		for pred := range set {
			copied[pred] = struct{}{}
		}
		next[k] = copied
	}

	set, ok := next[key]
	if !ok {
		set = make(Set)
		next[key] = set
	}
	if selected {
		set[p] = struct{}{}
	} else {
		delete(set, p)
	}
	return next
}

// Active reports whether any category has a selection.
func (s State) Active() bool {
	for _, set := range s {
		if len(set) > 0 {
			return true
		}
	}
	return false
}

// Count returns the total number of selected predicates.
func (s State) Count() int {
	n := 0
	for _, set := range s {
		n += len(set)
	}
	return n
}
