package cfg

type Cfg struct {
	// Upstream endpoints
	ListURL   string
	DetailURL string
	UserAgent string

	// Ingestion configuration
	Category     string
	WatchFile    string
	KeywordsFile string
	PollInterval int
	FetchTimeout int

	// Storage configuration
	Storage      string
	SnapshotPath string
	HistoryPath  string
	DBPath       string

	// HTTP API configuration
	Port         string
	APIAccessKey string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
