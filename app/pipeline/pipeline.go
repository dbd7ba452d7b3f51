// Package pipeline runs one ingestion cycle end to end: snapshot
// fetch, category filter, diff against the previous snapshot, per-item
// detail fetch and parse, criteria matching, cache persistence and
// summarization.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tfrwatch/tfrwatch/app/advisory"
	"github.com/tfrwatch/tfrwatch/app/store"
)

// Fetcher is the network collaborator providing the snapshot list and
// per-NOTAM detail markup.
type Fetcher interface {
	FetchList(ctx context.Context) ([]advisory.Raw, error)
	FetchDetail(ctx context.Context, notamID string) (string, error)
}

// Notifier receives the new matches of one cycle. The dedup invariant
// on matched history guarantees a given advisory is handed over at
// most once, even across restarts.
type Notifier interface {
	Notify(matches []advisory.Parsed)
}

// Result is what one completed cycle hands to downstream consumers.
type Result struct {
	NewMatches []advisory.Parsed
	History    []advisory.Parsed
	Summary    advisory.Summary
}

type Pipeline struct {
	fetcher  Fetcher
	store    store.Store
	parser   *advisory.Parser
	matcher  *advisory.Matcher
	notifier Notifier
	category string
}

func New(fetcher Fetcher, cache store.Store, matcher *advisory.Matcher,
	notifier Notifier, category string) *Pipeline {
	return &Pipeline{
		fetcher:  fetcher,
		store:    cache,
		parser:   advisory.NewParser(),
		matcher:  matcher,
		notifier: notifier,
		category: category,
	}
}

// RunCycle executes one poll. A snapshot fetch failure aborts the
// cycle before any write, leaving the previous caches intact. A single
// advisory's detail fetch failure is logged and skips only that
// advisory: it stays in the written snapshot unenriched, so it will
// not be re-detected, but it never reaches matched history.
func (p *Pipeline) RunCycle(ctx context.Context) (*Result, error) {
	feed, err := p.fetcher.FetchList(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot fetch failed: %w", err)
	}
	slog.Debug("Snapshot downloaded", "total", len(feed))

	current := advisory.FilterCategory(feed, p.category)
	previous := advisory.FilterCategory(p.store.LoadSnapshot(), p.category)
	fresh := advisory.Diff(current, previous)

	byID := make(map[string]int, len(current))
	for i, item := range current {
		byID[item.NOTAMID] = i
	}

	var newMatches []advisory.Parsed
	for _, item := range fresh {
		slog.Debug("Processing advisory", "notam_id", item.NOTAMID)

		markup, err := p.fetcher.FetchDetail(ctx, item.NOTAMID)
		if err != nil {
			slog.Error("Failed to fetch advisory detail, skipping", "notam_id", item.NOTAMID, "error", err)
			continue
		}

		parsed := p.parser.Run(markup)
		parsed.Description = item.Description
		if parsed.NOTAMID == "" {
			parsed.NOTAMID = item.NOTAMID
		}

		if i, ok := byID[item.NOTAMID]; ok {
			current[i].Parsed = &parsed
		}

		if p.matcher.Matches(parsed) {
			slog.Info("Advisory matches criteria", "notam_id", item.NOTAMID, "location", parsed.Location)
			newMatches = append(newMatches, parsed)
		}
	}

	if err := p.store.SaveSnapshot(current); err != nil {
		slog.Error("Failed to persist raw snapshot", "error", err)
	}

	history := advisory.Merge(p.store.LoadHistory(), newMatches)
	if err := p.store.SaveHistory(history); err != nil {
		slog.Error("Failed to persist matched history", "error", err)
	}

	summary := advisory.Summarize(history)

	slog.Info("Cycle completed",
		"total", len(feed),
		"in_category", len(current),
		"new", len(fresh),
		"matched", len(newMatches),
		"history", len(history),
		"today", summary.TodayCount)

	if p.notifier != nil && len(newMatches) > 0 {
		p.notifier.Notify(newMatches)
	}

	return &Result{
		NewMatches: newMatches,
		History:    history,
		Summary:    summary,
	}, nil
}
