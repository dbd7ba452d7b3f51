package advisory

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestMatcher_EmptyKeywordsMatchesAll(t *testing.T) {
	matcher := NewMatcher(nil)

	records := []Parsed{
		{},
		{NOTAMID: "5/1234", Reason: "Hazards"},
	}
	for i, r := range records {
		if !matcher.Matches(r) {
			t.Errorf("Record %d should match when no keywords are configured", i)
		}
	}
}

func TestMatcher_KeywordInReason(t *testing.T) {
	matcher := NewMatcher([]string{"security"})

	if !matcher.Matches(Parsed{Reason: "Security exercise"}) {
		t.Error("Expected case-insensitive match on reason field")
	}
	if matcher.Matches(Parsed{Reason: "Airshow demonstration"}) {
		t.Error("Expected no match for unrelated record")
	}
}

func TestMatcher_SearchableFields(t *testing.T) {
	cases := []struct {
		name   string
		record Parsed
	}{
		{"notam id", Parsed{NOTAMID: "WANTED 5/1"}},
		{"location", Parsed{Location: "Wanted, CO"}},
		{"begin", Parsed{Begin: "wanted"}},
		{"end", Parsed{End: "wanted"}},
		{"restrictions", Parsed{Restrictions: "No operations. WANTED."}},
		{"other info", Parsed{OtherInfo: "See wanted supplement"}},
		{"airspace center", Parsed{Airspace: Airspace{Center: "WANTED VOR"}}},
		{"airspace altitude", Parsed{Airspace: Airspace{Altitude: "wanted feet"}}},
		{"description", Parsed{Description: "Wanted area"}},
	}

	matcher := NewMatcher([]string{"wanted"})
	for _, tc := range cases {
		if !matcher.Matches(tc.record) {
			t.Errorf("Expected keyword to match via %s", tc.name)
		}
	}

	// Radius is deliberately not part of the searchable text.
	if matcher.Matches(Parsed{Airspace: Airspace{Radius: "wanted"}}) {
		t.Error("Radius should not participate in keyword matching")
	}
}

func TestLoadKeywords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keywords.txt")

	content := "  Drone \n\nSECURITY\n \nspace launch\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write keywords file: %v", err)
	}

	keywords := LoadKeywords(path)
	expected := []string{"drone", "security", "space launch"}
	if !reflect.DeepEqual(keywords, expected) {
		t.Errorf("Expected keywords %v, got %v", expected, keywords)
	}
}

func TestLoadKeywords_MissingFile(t *testing.T) {
	if kws := LoadKeywords(filepath.Join(t.TempDir(), "nope.txt")); len(kws) != 0 {
		t.Errorf("Expected empty keyword list for missing file, got %v", kws)
	}
	if kws := LoadKeywords(""); len(kws) != 0 {
		t.Errorf("Expected empty keyword list for empty path, got %v", kws)
	}
}

func TestNormalizeKeywords(t *testing.T) {
	got := NormalizeKeywords([]string{" VIP ", "", "Drone"})
	expected := []string{"vip", "drone"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
