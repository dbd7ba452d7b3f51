package advisory

import (
	"log/slog"
	"os"
	"strings"
)

// Matcher decides whether a parsed advisory satisfies the configured
// keyword criteria. An empty keyword list matches everything.
type Matcher struct {
	keywords []string
}

func NewMatcher(keywords []string) *Matcher {
	return &Matcher{keywords: keywords}
}

func (m *Matcher) KeywordCount() int {
	return len(m.keywords)
}

// Matches reports whether any keyword occurs, case-insensitively, in
// the advisory's searchable text.
func (m *Matcher) Matches(detail Parsed) bool {
	if len(m.keywords) == 0 {
		return true
	}

	haystack := searchableText(detail)
	for _, kw := range m.keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// searchableText concatenates the fields keyword matching runs over.
// The field order is fixed and the result is lowercased once so that
// keywords (stored lowercase) match case-insensitively.
func searchableText(detail Parsed) string {
	return strings.ToLower(strings.Join([]string{
		detail.NOTAMID,
		detail.Location,
		detail.Reason,
		detail.Begin,
		detail.End,
		detail.Restrictions,
		detail.OtherInfo,
		detail.Airspace.Center,
		detail.Airspace.Altitude,
		detail.Description,
	}, " "))
}

// LoadKeywords reads a newline-delimited keyword file: each non-blank
// line, trimmed and lowercased, becomes one keyword. A missing or
// unreadable file yields an empty list, which makes the matcher accept
// everything.
func LoadKeywords(path string) []string {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Failed to read keywords file", "path", path, "error", err)
		}
		return nil
	}

	var keywords []string
	for _, line := range strings.Split(string(data), "\n") {
		kw := strings.ToLower(strings.TrimSpace(line))
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// NormalizeKeywords applies the same trim/lowercase/drop-empty rule to
// keywords supplied inline (e.g. from a watch profile).
func NormalizeKeywords(raw []string) []string {
	var keywords []string
	for _, k := range raw {
		kw := strings.ToLower(strings.TrimSpace(k))
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
