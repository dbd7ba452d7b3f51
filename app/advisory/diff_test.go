package advisory

import (
	"reflect"
	"testing"
)

func ids(items []Raw) []string {
	out := make([]string, 0, len(items))
	for _, i := range items {
		out = append(out, i.NOTAMID)
	}
	return out
}

func parsedIDs(items []Parsed) []string {
	out := make([]string, 0, len(items))
	for _, i := range items {
		out = append(out, i.NOTAMID)
	}
	return out
}

func TestFilterCategory(t *testing.T) {
	items := []Raw{
		{NOTAMID: "A", Type: "SECURITY"},
		{NOTAMID: "B", Type: "Hazards"},
		{NOTAMID: "C", Type: "security"},
		{NOTAMID: "D"},
	}

	got := ids(FilterCategory(items, "SECURITY"))
	expected := []string{"A", "C"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestDiff_NewItems(t *testing.T) {
	current := []Raw{{NOTAMID: "A"}, {NOTAMID: "B"}}
	previous := []Raw{{NOTAMID: "A"}}

	got := ids(Diff(current, previous))
	if !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("Expected [B], got %v", got)
	}
}

func TestDiff_PreservesCurrentOrder(t *testing.T) {
	current := []Raw{{NOTAMID: "C"}, {NOTAMID: "A"}, {NOTAMID: "B"}}
	previous := []Raw{{NOTAMID: "A"}}

	got := ids(Diff(current, previous))
	if !reflect.DeepEqual(got, []string{"C", "B"}) {
		t.Errorf("Expected [C B], got %v", got)
	}
}

func TestDiff_IdenticalSnapshots(t *testing.T) {
	snapshot := []Raw{{NOTAMID: "A"}, {NOTAMID: "B"}}

	if got := Diff(snapshot, snapshot); len(got) != 0 {
		t.Errorf("Expected no new items, got %v", ids(got))
	}
}

func TestDiff_EmptyPrevious(t *testing.T) {
	current := []Raw{{NOTAMID: "A"}, {NOTAMID: "B"}}

	got := ids(Diff(current, nil))
	if !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("Expected all items new on first run, got %v", got)
	}
}

func TestMerge_DedupAndPrepend(t *testing.T) {
	history := []Parsed{{NOTAMID: "X"}}
	newMatches := []Parsed{{NOTAMID: "X"}, {NOTAMID: "Y"}}

	got := parsedIDs(Merge(history, newMatches))
	if !reflect.DeepEqual(got, []string{"Y", "X"}) {
		t.Errorf("Expected [Y X], got %v", got)
	}
}

func TestMerge_BatchOrder(t *testing.T) {
	history := []Parsed{{NOTAMID: "old"}}
	newMatches := []Parsed{{NOTAMID: "first"}, {NOTAMID: "second"}}

	// The newest poll's matches occupy the front in discovery order.
	got := parsedIDs(Merge(history, newMatches))
	if !reflect.DeepEqual(got, []string{"first", "second", "old"}) {
		t.Errorf("Expected [first second old], got %v", got)
	}
}

func TestMerge_Idempotent(t *testing.T) {
	history := []Parsed{{NOTAMID: "A"}}
	batch := []Parsed{{NOTAMID: "B"}, {NOTAMID: "C"}}

	once := Merge(history, batch)
	twice := Merge(once, batch)

	if !reflect.DeepEqual(parsedIDs(once), parsedIDs(twice)) {
		t.Errorf("Merging the same batch twice changed the result: %v vs %v",
			parsedIDs(once), parsedIDs(twice))
	}
}

func TestMerge_DuplicateWithinBatch(t *testing.T) {
	got := parsedIDs(Merge(nil, []Parsed{{NOTAMID: "A"}, {NOTAMID: "A"}}))
	if !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("Expected single A, got %v", got)
	}
}
