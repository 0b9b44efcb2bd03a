// Package models defines configuration and report structures shared by
// the CLI actions.
package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration. CLI flags override file values.
type Config struct {
	Workers     int    `yaml:"workers"`
	Format      string `yaml:"format"`    // json | yaml
	CacheDir    string `yaml:"cache_dir"` // content-hash report cache
	CacheMaxAge string `yaml:"cache_max_age"`
	DBPath      string `yaml:"db_path"` // empty = next to the binary
	LangCheck   bool   `yaml:"lang_check"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Workers:     4,
		Format:      "json",
		CacheDir:    "readscore-cache",
		CacheMaxAge: "168h",
		LangCheck:   true,
	}
}

// LoadConfig reads a YAML config file, falling back to defaults when the
// file does not exist.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}

// MaxAge parses the cache max-age duration.
func (c *Config) MaxAge() (time.Duration, error) {
	maxAge, err := time.ParseDuration(c.CacheMaxAge)
	if err != nil {
		return 0, fmt.Errorf("invalid cache_max_age duration: %w", err)
	}
	return maxAge, nil
}
