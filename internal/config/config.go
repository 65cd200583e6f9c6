// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	SnapshotPath string `json:"snapshot_path,omitempty"` // Where the document snapshot is persisted
	ChromePath   string `json:"chrome_path,omitempty"`   // Chrome/Chromium binary for PDF export

	// Export behavior
	PageSize      string `json:"page_size,omitempty"`      // Default export page size (a4 or letter)
	ExportTimeout int    `json:"export_timeout,omitempty"` // Export timeout in seconds

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed document summaries
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.PageSize != "" && c.PageSize != "a4" && c.PageSize != "letter" {
		return fmt.Errorf("config error: 'page_size' must be a4 or letter, got %q", c.PageSize)
	}
	if c.ExportTimeout < 0 {
		return fmt.Errorf("config error: 'export_timeout' must be non-negative")
	}
	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.SnapshotPath == "" {
		result.SnapshotPath = defaults.SnapshotPath
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.PageSize == "" {
		result.PageSize = defaults.PageSize
	}
	if result.ExportTimeout == 0 {
		result.ExportTimeout = defaults.ExportTimeout
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}

// Defaults returns the built-in configuration: the snapshot lives under the
// user config directory, Chrome is discovered via CHROME_PATH or the system
// path, exports default to A4 with a 60 second timeout.
func Defaults() Config {
	return Config{
		SnapshotPath:  defaultSnapshotPath(),
		ChromePath:    os.Getenv("CHROME_PATH"),
		PageSize:      "a4",
		ExportTimeout: 60,
	}
}

func defaultSnapshotPath() string {
	if p := os.Getenv("RESUME_STORAGE_PATH"); p != "" {
		return p
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "resume-storage.json"
	}
	return filepath.Join(base, "resume-builder", "resume-storage.json")
}
