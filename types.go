package html2md

import "time"

// Input contains conversion parameters.
type Input struct {
	HTML    string // HTML content (required)
	BaseURL string // Base URL for resolving relative links (optional)
}

// ConvertResult holds the conversion outputs.
// Preview is nil unless preview rendering was enabled with WithPreview.
type ConvertResult struct {
	Markdown string
	Preview  []byte
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout        time.Duration
	previewEnabled bool
	previewStyle   string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// defaultPreviewStyle is the chroma style used when WithPreview gets "".
const defaultPreviewStyle = "github"

// WithTimeout caps the duration of a single Convert call.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("html2md: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithPreview enables HTML preview rendering of the produced Markdown.
// The style names a chroma syntax highlighting style used for fenced code
// blocks; an empty string selects the default. Unknown style names are
// reported as an error by NewConverter.
func WithPreview(style string) Option {
	return func(c *Converter) {
		c.cfg.previewEnabled = true
		if style == "" {
			style = defaultPreviewStyle
		}
		c.cfg.previewStyle = style
	}
}
