// Package config loads the optional on-disk configuration that overrides
// the built-in selector table, boilerplate denylist, and run tuning.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// File represents the structure of ~/.newswatch/config.yaml. Every field
// is optional; zero values mean "use the built-in default".
type File struct {
	Selectors   map[string]string `yaml:"selectors"`
	Boilerplate []string          `yaml:"boilerplate"`
	Attempts    int               `yaml:"attempts"`
	RetryDelay  string            `yaml:"retry_delay"`
	TargetDelay string            `yaml:"target_delay"`
}

// Load reads the config file at path, or ~/.newswatch/config.yaml when
// path is empty. Returns nil if the file doesn't exist (not an error).
// Returns an error if the file exists but cannot be parsed.
func Load(path string) (*File, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".newswatch", "config.yaml")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// RetryDelayOr parses the retry delay, falling back to def when the field
// is absent or malformed.
func (f *File) RetryDelayOr(def time.Duration) time.Duration {
	return parseDurationOr(f.RetryDelay, def)
}

// TargetDelayOr parses the inter-target delay, falling back to def when
// the field is absent or malformed.
func (f *File) TargetDelayOr(def time.Duration) time.Duration {
	return parseDurationOr(f.TargetDelay, def)
}

func parseDurationOr(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
