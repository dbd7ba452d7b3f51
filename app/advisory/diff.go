package advisory

import "strings"

// FilterCategory returns the advisories whose type matches the given
// category, compared case-insensitively. The pipeline runs the whole
// cycle over this filtered view.
func FilterCategory(items []Raw, category string) []Raw {
	filtered := make([]Raw, 0, len(items))
	for _, item := range items {
		if strings.EqualFold(item.Type, category) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Diff returns the advisories present in current but absent from
// previous, keyed by NOTAM id, preserving current's order.
func Diff(current, previous []Raw) []Raw {
	seen := make(map[string]struct{}, len(previous))
	for _, item := range previous {
		seen[item.NOTAMID] = struct{}{}
	}

	var fresh []Raw
	for _, item := range current {
		if _, ok := seen[item.NOTAMID]; !ok {
			fresh = append(fresh, item)
		}
	}
	return fresh
}

// Merge inserts each new match at the front of history unless an entry
// with the same NOTAM id is already present. Matches are processed in
// discovery order, so after the merge the newest poll's matches sit at
// the front in their original order, ahead of older entries.
func Merge(history, newMatches []Parsed) []Parsed {
	known := make(map[string]struct{}, len(history))
	for _, e := range history {
		known[e.NOTAMID] = struct{}{}
	}

	for i := len(newMatches) - 1; i >= 0; i-- {
		e := newMatches[i]
		if _, ok := known[e.NOTAMID]; ok {
			continue
		}
		known[e.NOTAMID] = struct{}{}
		history = append([]Parsed{e}, history...)
	}
	return history
}
