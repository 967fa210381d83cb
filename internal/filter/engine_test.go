package filter

import (
	"testing"

	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/rocket"
	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/text"
)

func testRockets() []rocket.Rocket {
	return []rocket.Rocket{
		{ID: "1", Name: "Falcon 1", FirstFlight: "24.03.2006", HeightM: 22.25, DiameterM: 1.68, MassKg: 30146},
		{ID: "2", Name: "Falcon 9", FirstFlight: "04.06.2010", HeightM: 70, DiameterM: 3.7, MassKg: 549054},
		{ID: "3", Name: "Falcon Heavy", FirstFlight: "06.02.2018", HeightM: 70, DiameterM: 12.2, MassKg: 1420788},
		{ID: "4", Name: "Starship", FirstFlight: "20.04.2023", HeightM: 118, DiameterM: 9, MassKg: 1335000},
	}
}

func ids(rockets []rocket.Rocket) []string {
	out := make([]string, len(rockets))
	for i, r := range rockets {
		out[i] = r.ID
	}
	return out
}

func TestApplyEmptyStateIsIdentity(t *testing.T) {
	rockets := testRockets()

	result := Apply(rockets, NewState())
	if len(result) != len(rockets) {
		t.Fatalf("expected %d rockets, got %d", len(rockets), len(result))
	}
	// The unfiltered path returns the input slice itself.
	if &result[0] != &rockets[0] {
		t.Error("expected the input slice back, not a copy")
	}

	result = Apply(rockets, nil)
	if len(result) != len(rockets) {
		t.Errorf("nil state: expected %d rockets, got %d", len(rockets), len(result))
	}
}

func TestApplyAllEmptySetsIsIdentity(t *testing.T) {
	rockets := testRockets()
	state := State{
		KeyName:   NewSet(),
		KeyHeight: NewSet(),
	}

	result := Apply(rockets, state)
	if len(result) != len(rockets) {
		t.Fatalf("expected %d rockets, got %d", len(rockets), len(result))
	}
	if &result[0] != &rockets[0] {
		t.Error("expected the input slice back, not a copy")
	}
}

func TestApplySingleCategory(t *testing.T) {
	rockets := testRockets()
	state := State{
		KeyName: NewSet(NewExact("falcon 9")), // case-insensitive
	}

	result := Apply(rockets, state)
	if len(result) != 1 || result[0].ID != "2" {
		t.Errorf("expected [2], got %v", ids(result))
	}
}

func TestApplyOrWithinCategory(t *testing.T) {
	rockets := testRockets()
	state := State{
		KeyName: NewSet(NewExact("Falcon 1"), NewExact("Starship")),
	}

	result := Apply(rockets, state)
	if len(result) != 2 || result[0].ID != "1" || result[1].ID != "4" {
		t.Errorf("expected [1 4] in input order, got %v", ids(result))
	}
}

func TestApplyAndAcrossCategories(t *testing.T) {
	rockets := testRockets()
	// Height >= 70 keeps 2, 3, 4; first flight up to 2015 keeps 1, 2.
	// The intersection is just Falcon 9.
	state := State{
		KeyHeight:      NewSet(RangeFrom(text.Raw(""), 70)),
		KeyFirstFlight: NewSet(YearTo(text.Raw(""), 2015)),
	}

	result := Apply(rockets, state)
	if len(result) != 1 || result[0].ID != "2" {
		t.Errorf("expected [2], got %v", ids(result))
	}
}

func TestApplyEmptySetImposesNoConstraint(t *testing.T) {
	rockets := testRockets()
	state := State{
		KeyFirstFlight: NewSet(YearTo(text.Raw(""), 2015)),
		KeyName:        NewSet(), // present but empty: no constraint
	}

	result := Apply(rockets, state)
	if len(result) != 2 || result[0].ID != "1" || result[1].ID != "2" {
		t.Errorf("expected [1 2], got %v", ids(result))
	}
}

func TestApplyWrongKindIgnored(t *testing.T) {
	rockets := testRockets()

	// A numeric range under the name key is the wrong kind and is filtered
	// out of consideration; the exact match still applies.
	state := State{
		KeyName: NewSet(RangeFrom(text.Raw(""), 0), NewExact("Starship")),
	}
	result := Apply(rockets, state)
	if len(result) != 1 || result[0].ID != "4" {
		t.Errorf("expected [4], got %v", ids(result))
	}

	// A selection of only wrong-kind predicates leaves the category
	// unconstrained rather than excluding everything.
	state = State{
		KeyName: NewSet(RangeFrom(text.Raw(""), 0)),
	}
	result = Apply(rockets, state)
	if len(result) != len(rockets) {
		t.Errorf("expected all %d rockets, got %v", len(rockets), ids(result))
	}
}

func TestApplyUnknownKeyImposesNoConstraint(t *testing.T) {
	rockets := testRockets()
	state := State{
		CategoryKey("engine_count"): NewSet(RangeFrom(text.Raw(""), 9)),
	}

	result := Apply(rockets, state)
	if len(result) != len(rockets) {
		t.Errorf("expected all %d rockets, got %d", len(rockets), len(result))
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	rockets := testRockets()
	state := State{
		KeyHeight: NewSet(RangeFrom(text.Raw(""), 0)),
	}

	result := Apply(rockets, state)
	if len(result) != len(rockets) {
		t.Fatalf("expected %d rockets, got %d", len(rockets), len(result))
	}
	for i, r := range result {
		if r.ID != rockets[i].ID {
			t.Errorf("position %d: got %s, expected %s", i, r.ID, rockets[i].ID)
		}
	}
}

func TestApplyBucketSelection(t *testing.T) {
	// End to end: derive buckets from the live data, select one, apply.
	rockets := testRockets()
	categories := BuildCategories(rockets)

	var height Category
	for _, c := range categories {
		if c.Key == KeyHeight {
			height = c
		}
	}
	if len(height.Predicates) != 3 {
		t.Fatalf("expected 3 height buckets, got %d", len(height.Predicates))
	}

	// Heights are 22.25, 70, 70, 118: the under bucket ends at
	// 22.25 + (118-22.25)/3 ≈ 54.17, keeping only Falcon 1.
	state := NewState().Toggle(KeyHeight, height.Predicates[0], true)
	result := Apply(rockets, state)
	if len(result) != 1 || result[0].ID != "1" {
		t.Errorf("expected [1], got %v", ids(result))
	}
}
