// Package config loads and validates html2md CLI configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidValue   = errors.New("invalid config value")
)

// maxConfigSize caps config files at 1MB to keep parse memory bounded.
const maxConfigSize = 1 << 20

// Limits for numeric settings.
const (
	MaxTimeoutSeconds = 600   // ten minutes
	MaxDebounceMs     = 60000 // one minute
)

// Config holds all configuration for the html2md CLI.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Preview PreviewConfig `yaml:"preview"`
	Watch   WatchConfig   `yaml:"watch"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Default output directory (empty = alongside input)
}

// FetchConfig defines how remote pages are retrieved.
type FetchConfig struct {
	RenderJS       bool `yaml:"renderJS"`       // Fetch with a headless browser
	TimeoutSeconds int  `yaml:"timeoutSeconds"` // Fetch and convert timeout (0 = default)
}

// PreviewConfig defines HTML preview options.
type PreviewConfig struct {
	Enabled bool   `yaml:"enabled"`
	Style   string `yaml:"style"` // Highlight style name (empty = default)
}

// WatchConfig defines watch mode options.
type WatchConfig struct {
	DebounceMs int `yaml:"debounceMs"` // Delay before reconverting (0 = default)
}

// DefaultConfig returns a neutral configuration with all features disabled.
func DefaultConfig() *Config {
	return &Config{
		Output:  OutputConfig{Dir: ""},
		Fetch:   FetchConfig{RenderJS: false, TimeoutSeconds: 0},
		Preview: PreviewConfig{Enabled: false, Style: ""},
		Watch:   WatchConfig{DebounceMs: 0},
	}
}

// Validate checks numeric ranges. Preview style names are validated later
// when the converter is built, where the style registry is available.
func (c *Config) Validate() error {
	if c.Fetch.TimeoutSeconds < 0 {
		return fmt.Errorf("%w: fetch.timeoutSeconds must be >= 0, got %d", ErrInvalidValue, c.Fetch.TimeoutSeconds)
	}
	if c.Fetch.TimeoutSeconds > MaxTimeoutSeconds {
		return fmt.Errorf("%w: fetch.timeoutSeconds must be <= %d, got %d", ErrInvalidValue, MaxTimeoutSeconds, c.Fetch.TimeoutSeconds)
	}
	if c.Watch.DebounceMs < 0 {
		return fmt.Errorf("%w: watch.debounceMs must be >= 0, got %d", ErrInvalidValue, c.Watch.DebounceMs)
	}
	if c.Watch.DebounceMs > MaxDebounceMs {
		return fmt.Errorf("%w: watch.debounceMs must be <= %d, got %d", ErrInvalidValue, MaxDebounceMs, c.Watch.DebounceMs)
	}
	return nil
}

// LoadConfig loads configuration from an explicit file path.
// Returns ErrConfigNotFound if the file does not exist (no silent fallback).
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrConfigNotFound)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > maxConfigSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrConfigParse, path, maxConfigSize)
	}

	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the locations ResolvePath probes, in order.
func SearchPaths() []string {
	paths := []string{"html2md.yaml", "html2md.yml"}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		paths = append(paths,
			filepath.Join(userConfigDir, "html2md", "html2md.yaml"),
			filepath.Join(userConfigDir, "html2md", "html2md.yml"),
		)
	}

	return paths
}

// ResolvePath searches standard locations for a config file.
// Tries the current directory first, then the user config directory.
func ResolvePath() (string, bool) {
	for _, p := range SearchPaths() {
		if fileExists(p) {
			return p, true
		}
	}
	return "", false
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
