package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		ListURL:      "https://tfr.faa.gov/tfrapi/exportTfrList",
		DetailURL:    "https://tfr.faa.gov/tfrapi/getWebText",
		UserAgent:    "Test Agent",
		Category:     "SECURITY",
		KeywordsFile: "keywords.txt",
		PollInterval: 300,
		FetchTimeout: 30,
		Storage:      "sqlite",
		DBPath:       "test.db",
		Port:         "8080",
		APIAccessKey: "test-key",
		Timezone:     "UTC",
		Debug:        true,
		Version:      "test-version",
	}

	if cfg.ListURL != "https://tfr.faa.gov/tfrapi/exportTfrList" {
		t.Errorf("Unexpected list URL: %s", cfg.ListURL)
	}
	if cfg.Category != "SECURITY" {
		t.Errorf("Expected category 'SECURITY', got '%s'", cfg.Category)
	}
	if cfg.PollInterval != 300 {
		t.Errorf("Expected poll interval 300, got %d", cfg.PollInterval)
	}
	if cfg.Storage != "sqlite" {
		t.Errorf("Expected storage 'sqlite', got '%s'", cfg.Storage)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.APIAccessKey != "test-key" {
		t.Errorf("Expected API key 'test-key', got '%s'", cfg.APIAccessKey)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
}

func TestGet_PanicsWhenNotLoaded(t *testing.T) {
	prev := globalCfg
	globalCfg = nil
	defer func() {
		globalCfg = prev
		if r := recover(); r == nil {
			t.Error("Get should panic when configuration is not loaded")
		}
	}()
	Get()
}
