package config

// WatchConfig is an optional YAML profile describing what to watch.
// Everything in it has a flag/env counterpart; values set here lose to
// explicit flags but win over built-in defaults.
type WatchConfig struct {
	Feed     FeedInfo `yaml:"feed"`
	Settings Settings `yaml:"settings"`
	Criteria Criteria `yaml:"criteria"`
}

// FeedInfo points at the upstream endpoints.
type FeedInfo struct {
	ListURL   string `yaml:"list_url"`
	DetailURL string `yaml:"detail_url"`
}

// Settings controls polling behavior.
type Settings struct {
	Category     string `yaml:"category"`
	PollInterval int    `yaml:"poll_interval"` // seconds
	Timeout      int    `yaml:"timeout"`       // seconds
}

// Criteria configures keyword matching: inline keywords, a
// newline-delimited keyword file, or both. No keywords at all means
// every advisory in the category matches.
type Criteria struct {
	Keywords     []string `yaml:"keywords"`
	KeywordsFile string   `yaml:"keywords_file"`
}
