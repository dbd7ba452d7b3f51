package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Upstream endpoints
	ListURL   string `long:"list-url" env:"TFR_LIST_URL" default:"https://tfr.faa.gov/tfrapi/exportTfrList" description:"TFR list export endpoint"`
	DetailURL string `long:"detail-url" env:"TFR_DETAIL_URL" default:"https://tfr.faa.gov/tfrapi/getWebText" description:"Per-NOTAM detail endpoint"`
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"tfrwatch/1.0" description:"User agent string for HTTP requests"`

	// Ingestion configuration
	Category     string `long:"category" env:"TFR_CATEGORY" default:"SECURITY" description:"Advisory category to ingest"`
	WatchFile    string `long:"watch-file" env:"WATCH_FILE" description:"Optional YAML watch profile"`
	KeywordsFile string `long:"keywords-file" env:"KEYWORDS_FILE" description:"Optional newline-delimited keyword list (empty list matches everything)"`
	PollInterval int    `long:"poll-interval" env:"POLL_INTERVAL" default:"300" description:"Seconds between polls"`
	FetchTimeout int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"30" description:"Per-request timeout in seconds"`

	// Storage configuration
	Storage      string `long:"storage" env:"STORAGE" default:"file" choice:"file" choice:"sqlite" description:"Cache backend"`
	SnapshotPath string `long:"snapshot-path" env:"SNAPSHOT_PATH" default:"tfr_cache.json" description:"Raw snapshot cache file (file storage)"`
	HistoryPath  string `long:"history-path" env:"HISTORY_PATH" default:"tfr_matches.json" description:"Matched history cache file (file storage)"`
	DBPath       string `long:"db-path" env:"DB_PATH" default:"tfrwatch.db" description:"SQLite database path (sqlite storage)"`

	// HTTP API configuration
	Port         string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	APIAccessKey string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for privileged endpoints (optional)"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		ListURL:      raw.ListURL,
		DetailURL:    raw.DetailURL,
		UserAgent:    raw.UserAgent,
		Category:     raw.Category,
		WatchFile:    raw.WatchFile,
		KeywordsFile: raw.KeywordsFile,
		PollInterval: raw.PollInterval,
		FetchTimeout: raw.FetchTimeout,
		Storage:      raw.Storage,
		SnapshotPath: raw.SnapshotPath,
		HistoryPath:  raw.HistoryPath,
		DBPath:       raw.DBPath,
		Port:         raw.Port,
		APIAccessKey: raw.APIAccessKey,
		Timezone:     raw.Timezone,
		Debug:        raw.Debug,
		Version:      GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
