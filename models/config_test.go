package models

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Workers != 4 {
		t.Errorf("expected default 4 workers, got %d", config.Workers)
	}
	if config.Format != "json" {
		t.Errorf("expected default json format, got %q", config.Format)
	}
	if !config.LangCheck {
		t.Error("expected lang_check enabled by default")
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "workers: 8\nformat: yaml\ncache_max_age: 24h\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Workers != 8 {
		t.Errorf("expected 8 workers, got %d", config.Workers)
	}
	if config.Format != "yaml" {
		t.Errorf("expected yaml format, got %q", config.Format)
	}
	// Unset keys keep their defaults.
	if config.CacheDir != "readscore-cache" {
		t.Errorf("expected default cache dir, got %q", config.CacheDir)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("workers: [not a number"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestMaxAge(t *testing.T) {
	config := DefaultConfig()
	maxAge, err := config.MaxAge()
	if err != nil {
		t.Fatalf("MaxAge failed: %v", err)
	}
	if maxAge != 168*time.Hour {
		t.Errorf("expected 168h, got %v", maxAge)
	}

	config.CacheMaxAge = "not-a-duration"
	if _, err := config.MaxAge(); err == nil {
		t.Error("expected error for invalid duration")
	}
}
