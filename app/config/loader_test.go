package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tfrwatch/tfrwatch/app/cfg"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "watch.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write profile: %v", err)
	}
	return path
}

func TestLoad_FullProfile(t *testing.T) {
	path := writeProfile(t, `
feed:
  list_url: "https://example.test/list"
  detail_url: "https://example.test/detail"
settings:
  category: "HAZARDS"
  poll_interval: 600
  timeout: 10
criteria:
  keywords:
    - "Drone"
    - "space launch"
  keywords_file: "extra.txt"
`)

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.Feed.ListURL != "https://example.test/list" {
		t.Errorf("Unexpected list URL: %s", config.Feed.ListURL)
	}
	if config.Settings.Category != "HAZARDS" {
		t.Errorf("Unexpected category: %s", config.Settings.Category)
	}
	if config.Settings.PollInterval != 600 {
		t.Errorf("Unexpected poll interval: %d", config.Settings.PollInterval)
	}
	if len(config.Criteria.Keywords) != 2 {
		t.Errorf("Unexpected keywords: %v", config.Criteria.Keywords)
	}
	if config.Criteria.KeywordsFile != "extra.txt" {
		t.Errorf("Unexpected keywords file: %s", config.Criteria.KeywordsFile)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	config, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") must not fail: %v", err)
	}
	if config != nil {
		t.Errorf("Expected nil profile for empty path, got %+v", config)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("Expected error for missing profile file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeProfile(t, "feed: [not: valid")
	if _, err := Load(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoad_RejectsNegativeIntervals(t *testing.T) {
	path := writeProfile(t, "settings:\n  poll_interval: -5\n")
	if _, err := Load(path); err == nil {
		t.Error("Expected validation error for negative poll interval")
	}
}

func TestApply(t *testing.T) {
	c := &cfg.Cfg{
		ListURL:      "https://tfr.faa.gov/tfrapi/exportTfrList",
		DetailURL:    "https://tfr.faa.gov/tfrapi/getWebText",
		Category:     "SECURITY",
		PollInterval: 300,
		FetchTimeout: 30,
	}

	Apply(c, &WatchConfig{
		Settings: Settings{Category: "HAZARDS", PollInterval: 600},
		Criteria: Criteria{KeywordsFile: "kw.txt"},
	})

	if c.Category != "HAZARDS" {
		t.Errorf("Expected profile category to apply, got %s", c.Category)
	}
	if c.PollInterval != 600 {
		t.Errorf("Expected profile poll interval to apply, got %d", c.PollInterval)
	}
	if c.KeywordsFile != "kw.txt" {
		t.Errorf("Expected profile keywords file to apply, got %s", c.KeywordsFile)
	}
	// Fields the profile does not set stay as configured.
	if c.ListURL != "https://tfr.faa.gov/tfrapi/exportTfrList" {
		t.Errorf("Unset profile field must not clobber config, got %s", c.ListURL)
	}
	if c.FetchTimeout != 30 {
		t.Errorf("Unset profile field must not clobber config, got %d", c.FetchTimeout)
	}
}

func TestApply_NilProfile(t *testing.T) {
	c := &cfg.Cfg{Category: "SECURITY"}
	Apply(c, nil)
	if c.Category != "SECURITY" {
		t.Error("Apply(nil) must be a no-op")
	}
}
