package advisory

import (
	"sort"
	"time"

	"github.com/araddon/dateparse"
)

// issueDateFormat is the fixed month/day/year format NOTAM issue dates
// are published in.
const issueDateFormat = "01/02/2006"

// Summary holds the per-day statistics derived from matched history.
type Summary struct {
	TodayCount      int `json:"today_count"`
	UniqueCityCount int `json:"unique_city_count"`
}

// Summarize counts the history entries issued on the current UTC day
// and, among those, the distinct non-empty locations. Entries with an
// empty or unparseable issue date are excluded from both counts.
func Summarize(history []Parsed) Summary {
	return SummarizeAt(history, time.Now().UTC())
}

// SummarizeAt is Summarize pinned to an explicit reference time.
func SummarizeAt(history []Parsed, now time.Time) Summary {
	today := now.UTC().Truncate(24 * time.Hour)

	var s Summary
	cities := make(map[string]struct{})
	for _, e := range history {
		d, err := time.Parse(issueDateFormat, e.IssueDate)
		if err != nil {
			continue
		}
		if d.Equal(today) {
			s.TodayCount++
			if e.Location != "" {
				cities[e.Location] = struct{}{}
			}
		}
	}
	s.UniqueCityCount = len(cities)
	return s
}

// SortByIssueDate orders history newest-first by issue date. FAA issue
// dates show up both as bare dates and as timestamps like
// "03/16/2025 13:00 UTC", so parsing goes through dateparse rather
// than a single fixed layout. Entries whose date cannot be parsed sort
// after dated ones, keeping their relative order.
func SortByIssueDate(history []Parsed) []Parsed {
	sorted := make([]Parsed, len(history))
	copy(sorted, history)

	sort.SliceStable(sorted, func(i, j int) bool {
		ti, iok := parseIssueDate(sorted[i].IssueDate)
		tj, jok := parseIssueDate(sorted[j].IssueDate)
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		return ti.After(tj)
	})
	return sorted
}

// issueDateLayouts are the shapes FAA pages have been observed to use.
var issueDateLayouts = []string{
	"01/02/2006 15:04 MST",
	issueDateFormat,
}

func parseIssueDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range issueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
