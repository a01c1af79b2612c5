package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-html2md/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string        // HTML2MD_CONFIG: config file path
	OutputDir    string        // HTML2MD_OUTPUT_DIR: default output directory
	Timeout      time.Duration // HTML2MD_TIMEOUT: fetch and convert timeout
	Workers      int           // HTML2MD_WORKERS: parallel workers
	RenderJS     bool          // HTML2MD_RENDER_JS: fetch with a headless browser
	PreviewStyle string        // HTML2MD_PREVIEW_STYLE: highlight style for previews
}

// knownEnvVars lists valid HTML2MD_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"HTML2MD_CONFIG":        true,
	"HTML2MD_OUTPUT_DIR":    true,
	"HTML2MD_TIMEOUT":       true,
	"HTML2MD_WORKERS":       true,
	"HTML2MD_RENDER_JS":     true,
	"HTML2MD_PREVIEW_STYLE": true,
	// Recognized by doctor, not a config value
	"HTML2MD_CONTAINER": true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized HTML2MD_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:   os.Getenv("HTML2MD_CONFIG"),
		OutputDir:    os.Getenv("HTML2MD_OUTPUT_DIR"),
		PreviewStyle: os.Getenv("HTML2MD_PREVIEW_STYLE"),
	}

	// Parse duration for timeout
	if timeout := os.Getenv("HTML2MD_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	// Parse int for workers
	if workers := os.Getenv("HTML2MD_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	// Parse bool for render-js
	if renderJS := os.Getenv("HTML2MD_RENDER_JS"); renderJS != "" {
		if b, err := strconv.ParseBool(renderJS); err == nil {
			cfg.RenderJS = b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized HTML2MD_* variables.
// Helps catch typos like HTML2MD_TIMOUT instead of HTML2MD_TIMEOUT.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "HTML2MD_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig fills config values the file left unset from environment
// variables. CLI flags are merged afterwards and win over both, so the
// effective precedence is: CLI flags > config file > env vars > defaults.
// Timeout and workers are resolved separately where the flag is parsed.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" && cfg.Output.Dir == "" {
		cfg.Output.Dir = env.OutputDir
	}

	if env.RenderJS && !cfg.Fetch.RenderJS {
		cfg.Fetch.RenderJS = true
	}

	if env.Timeout > 0 && cfg.Fetch.TimeoutSeconds == 0 {
		secs := int(env.Timeout / time.Second)
		if secs == 0 {
			secs = 1 // sub-second values round up, not away
		}
		cfg.Fetch.TimeoutSeconds = secs
	}

	// Preview style (auto-enable, same as the --preview-style flag)
	if env.PreviewStyle != "" && cfg.Preview.Style == "" {
		cfg.Preview.Style = env.PreviewStyle
		if !cfg.Preview.Enabled {
			cfg.Preview.Enabled = true
		}
	}
}
