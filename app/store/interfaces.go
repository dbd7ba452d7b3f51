package store

import "github.com/tfrwatch/tfrwatch/app/advisory"

// Store persists the two advisory collections: the latest raw snapshot
// (replaced wholesale every cycle) and the accumulated matched history
// (replaced wholesale after each merge). Loads never fail the caller:
// missing state yields an empty collection and corrupt state is logged
// and degraded to an empty collection, so a damaged cache can at worst
// cause advisories to be re-detected as new.
type Store interface {
	LoadSnapshot() []advisory.Raw
	SaveSnapshot(items []advisory.Raw) error

	LoadHistory() []advisory.Parsed
	SaveHistory(items []advisory.Parsed) error

	Close() error
}
