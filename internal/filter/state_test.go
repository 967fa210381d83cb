package filter

import (
	"testing"

	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/text"
)

func TestToggleSelect(t *testing.T) {
	p := YearTo(text.Raw("until 2015"), 2015)

	state := NewState().Toggle(KeyFirstFlight, p, true)
	if !state.Active() {
		t.Error("expected state to be active after selecting")
	}
	if !state[KeyFirstFlight].Has(p) {
		t.Error("expected predicate to be selected")
	}
	if state.Count() != 1 {
		t.Errorf("expected count 1, got %d", state.Count())
	}
}

func TestToggleRoundTrip(t *testing.T) {
	p := NewExact("Falcon 9")

	state := NewState().Toggle(KeyName, p, true).Toggle(KeyName, p, false)

	// Deselecting the last predicate leaves an empty set under the key,
	// not a missing key.
	set, ok := state[KeyName]
	if !ok {
		t.Fatal("expected the key to remain with an empty set")
	}
	if len(set) != 0 {
		t.Errorf("expected empty set, got %d entries", len(set))
	}
	if state.Active() {
		t.Error("expected state to be inactive")
	}

	// Empty set and absent key behave identically in Apply.
	rockets := testRockets()
	result := Apply(rockets, state)
	if len(result) != len(rockets) {
		t.Errorf("expected all %d rockets, got %d", len(rockets), len(result))
	}
}

func TestToggleDoesNotMutateOldState(t *testing.T) {
	p1 := NewExact("Falcon 1")
	p2 := NewExact("Falcon 9")

	old := NewState().Toggle(KeyName, p1, true)
	next := old.Toggle(KeyName, p2, true)

	if len(old[KeyName]) != 1 || !old[KeyName].Has(p1) {
		t.Error("previous state was mutated by Toggle")
	}
	if len(next[KeyName]) != 2 {
		t.Errorf("expected 2 selections in new state, got %d", len(next[KeyName]))
	}

	// Removing from the new state must not touch the old one either.
	_ = next.Toggle(KeyName, p1, false)
	if !next[KeyName].Has(p1) {
		t.Error("state was mutated by a later Toggle")
	}
}

func TestToggleDeselectMissing(t *testing.T) {
	// Deselecting something that was never selected is a no-op, not a panic.
	state := NewState().Toggle(KeyMass, RangeFrom(text.Raw(""), 1000), false)
	if state.Active() {
		t.Error("expected inactive state")
	}
}

func TestToggleMultipleCategories(t *testing.T) {
	state := NewState().
		Toggle(KeyName, NewExact("Starship"), true).
		Toggle(KeyHeight, RangeFrom(text.Raw(""), 100), true)

	if state.Count() != 2 {
		t.Errorf("expected 2 selections, got %d", state.Count())
	}
	if len(state[KeyName]) != 1 || len(state[KeyHeight]) != 1 {
		t.Error("expected one selection per category")
	}
}
