package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a watch profile from path. An empty path returns a nil
// profile, which callers treat as "flags and defaults only".
func Load(path string) (*WatchConfig, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read watch profile: %w", err)
	}

	var config WatchConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse watch profile: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid watch profile %s: %w", path, err)
	}

	return &config, nil
}

func validate(config *WatchConfig) error {
	if config.Settings.PollInterval < 0 {
		return fmt.Errorf("poll interval must be non-negative")
	}
	if config.Settings.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}
	return nil
}
