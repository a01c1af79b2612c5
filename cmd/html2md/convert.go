package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/chroma/v2/styles"

	html2md "github.com/alnah/go-html2md"
	"github.com/alnah/go-html2md/internal/config"
	"github.com/alnah/go-html2md/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// defaultFetchTimeout applies when neither flag, env, nor config set one.
const defaultFetchTimeout = 30 * time.Second

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrReadHTML         = errors.New("failed to read HTML input")
	ErrWriteMarkdown    = errors.New("failed to write markdown file")
	ErrWritePreview     = errors.New("failed to write preview file")
	ErrInvalidExtension = errors.New("file must have .html or .htm extension")
	ErrInvalidWorkers   = errors.New("invalid worker count")
	ErrInvalidTimeout   = errors.New("invalid timeout")
	ErrInvalidDebounce  = errors.New("invalid debounce")
	ErrServiceInit      = errors.New("failed to initialize conversion service")
)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	timeout      time.Duration
	renderJS     bool
	preview      bool
	previewStyle string
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Validate worker count early
	workers, err := resolveWorkers(flags.workers)
	if err != nil {
		return err
	}

	// Load configuration
	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	// Fill gaps from the environment, then merge CLI flags (CLI wins)
	applyEnvConfig(loadEnvConfig(), cfg)
	mergeFlags(flags, cfg)

	// Resolve output location
	outputDir := resolveOutputDir(flags.output, cfg)

	// Resolve inputs: files, directories, URLs, stdin
	files, err := resolveInputs(positionalArgs, outputDir, env)
	if err != nil {
		return err
	}

	// Bundle conversion parameters
	params, err := buildParams(flags, cfg)
	if err != nil {
		return err
	}

	// Convert through a lazily filled service pool
	pool := NewServicePool(resolvePoolSize(workers), func() (*html2md.Service, error) {
		return newService(params)
	})
	defer func() { _ = pool.Close() }()

	results := convertBatch(ctx, pool, files, params, env)

	// Print results
	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}

	return nil
}

// loadConfig resolves and loads the configuration file.
// Priority: explicit path > HTML2MD_CONFIG > html2md.yaml in standard
// locations. Without an explicit path, a missing config means defaults.
func loadConfig(flagPath string) (*config.Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv("HTML2MD_CONFIG")
	}

	if path == "" {
		found, ok := config.ResolvePath()
		if !ok {
			return config.DefaultConfig(), nil
		}
		path = found
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.fetch.renderJS {
		cfg.Fetch.RenderJS = true
	}

	if flags.preview.enabled {
		cfg.Preview.Enabled = true
	}
	if flags.preview.style != "" {
		cfg.Preview.Style = flags.preview.style
		cfg.Preview.Enabled = true
	}
	// --no-preview wins over both enabling forms
	if flags.preview.disabled {
		cfg.Preview.Enabled = false
	}
}

// resolveOutputDir determines the output location. Flag wins over config.
// The result may name a directory or, when it ends in .md, a single file.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.Dir
}

// resolveWorkers validates the worker count, falling back to HTML2MD_WORKERS
// when the flag is unset.
func resolveWorkers(flagWorkers int) (int, error) {
	workers := flagWorkers
	if workers == 0 {
		workers = loadEnvConfig().Workers
	}

	if workers < 0 {
		return 0, fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkers, workers)
	}
	if workers > maxPoolSize {
		return 0, fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkers, workers, maxPoolSize)
	}
	return workers, nil
}

// resolveTimeout determines the fetch and convert timeout.
// Priority: --timeout flag > config fetch.timeoutSeconds > default.
func resolveTimeout(flagTimeout string, cfg *config.Config) (time.Duration, error) {
	if flagTimeout != "" {
		d, err := time.ParseDuration(flagTimeout)
		if err != nil || d <= 0 {
			return 0, fmt.Errorf("%w: %q (use forms like 30s or 2m)", ErrInvalidTimeout, flagTimeout)
		}
		return d, nil
	}
	if cfg.Fetch.TimeoutSeconds > 0 {
		return time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second, nil
	}
	return defaultFetchTimeout, nil
}

// buildParams bundles the merged configuration into conversion parameters.
func buildParams(flags *convertFlags, cfg *config.Config) (*conversionParams, error) {
	timeout, err := resolveTimeout(flags.fetch.timeout, cfg)
	if err != nil {
		return nil, err
	}

	return &conversionParams{
		timeout:      timeout,
		renderJS:     cfg.Fetch.RenderJS,
		preview:      cfg.Preview.Enabled,
		previewStyle: cfg.Preview.Style,
	}, nil
}

// newService builds a conversion service from resolved parameters.
// With renderJS the service fetches through a headless browser; otherwise a
// plain HTTP client. Local file inputs never touch the fetcher.
func newService(params *conversionParams) (*html2md.Service, error) {
	var fetcher html2md.Fetcher
	if params.renderJS {
		fetcher = html2md.NewBrowserFetcher(params.timeout)
	} else {
		fetcher = html2md.NewHTTPFetcher(params.timeout)
	}

	opts := []html2md.Option{html2md.WithTimeout(params.timeout)}
	if params.preview {
		opts = append(opts, html2md.WithPreview(params.previewStyle))
	}

	return html2md.NewService(fetcher, opts...)
}

// hintFor appends an actionable hint for known failure classes.
func hintFor(err error) string {
	switch {
	case errors.Is(err, html2md.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, html2md.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, html2md.ErrFetchFailed):
		return hints.ForFetchFailed()
	case errors.Is(err, html2md.ErrUnknownPreviewStyle):
		return hints.ForStyleNotFound(styles.Names())
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths())
	case errors.Is(err, ErrWriteMarkdown), errors.Is(err, ErrWritePreview):
		return hints.ForOutputDirectory()
	}
	return ""
}
