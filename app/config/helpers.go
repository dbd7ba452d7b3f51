package config

import "github.com/tfrwatch/tfrwatch/app/cfg"

// Apply folds a watch profile into the loaded configuration. Only
// values the profile actually sets are copied; for those, the profile
// wins over flag and env values since pointing at a profile is the
// more specific choice.
func Apply(c *cfg.Cfg, w *WatchConfig) {
	if w == nil {
		return
	}

	if w.Feed.ListURL != "" {
		c.ListURL = w.Feed.ListURL
	}
	if w.Feed.DetailURL != "" {
		c.DetailURL = w.Feed.DetailURL
	}
	if w.Settings.Category != "" {
		c.Category = w.Settings.Category
	}
	if w.Settings.PollInterval > 0 {
		c.PollInterval = w.Settings.PollInterval
	}
	if w.Settings.Timeout > 0 {
		c.FetchTimeout = w.Settings.Timeout
	}
	if w.Criteria.KeywordsFile != "" {
		c.KeywordsFile = w.Criteria.KeywordsFile
	}
}
