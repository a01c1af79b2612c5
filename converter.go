package html2md

import (
	"context"
	"fmt"

	"github.com/alnah/go-html2md/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.HTMLPreprocessor  = (*pipeline.EntityPreprocessor)(nil)
	_ pipeline.MarkdownConverter = (*pipeline.ScanConverter)(nil)
	_ pipeline.MarkdownCleaner   = (*pipeline.TidyCleaner)(nil)
	_ previewRenderer            = (*goldmarkRenderer)(nil)
)

// Converter orchestrates the HTML-to-Markdown conversion pipeline.
// Create with NewConverter() and use Convert() for conversion.
type Converter struct {
	cfg          converterConfig
	preprocessor pipeline.HTMLPreprocessor
	converter    pipeline.MarkdownConverter
	cleaner      pipeline.MarkdownCleaner
	preview      previewRenderer
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithPreview).
// Returns error if an option value cannot be honored, such as an unknown
// preview style name.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          converterConfig{timeout: defaultTimeout},
		preprocessor: &pipeline.EntityPreprocessor{},
		converter:    pipeline.NewScanConverter(),
		cleaner:      &pipeline.TidyCleaner{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.previewEnabled {
		if !isKnownPreviewStyle(c.cfg.previewStyle) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPreviewStyle, c.cfg.previewStyle)
		}
		// Create preview renderer if not injected (e.g., by tests)
		if c.preview == nil {
			c.preview = newGoldmarkRenderer(c.cfg.previewStyle)
		}
	}

	return c, nil
}

// Convert runs the full pipeline and returns the result containing Markdown
// and, when enabled, the HTML preview.
// The context is used for cancellation; the configured timeout caps the run.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.HTML == "" {
		return nil, ErrEmptyHTML
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	// Normalize entities and strip comments
	htmlContent := c.preprocessor.PrepareHTML(input.HTML)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Scan to raw Markdown
	markdown := c.converter.ToMarkdown(htmlContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Tidy lines and remove scanner artifacts
	markdown = c.cleaner.CleanMarkdown(markdown)

	// Resolve relative link targets against the source URL (if provided)
	if input.BaseURL != "" {
		markdown, err = pipeline.ResolveRelativeLinks(markdown, input.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
		}
	}

	if c.preview == nil {
		return &ConvertResult{Markdown: markdown}, nil
	}

	preview, err := c.preview.Render(ctx, markdown)
	if err != nil {
		return nil, fmt.Errorf("rendering preview: %w", err)
	}

	return &ConvertResult{Markdown: markdown, Preview: preview}, nil
}

// Convert converts HTML to Markdown with default settings.
// It never fails: conversion has no error conditions beyond empty input,
// which yields an empty string.
func Convert(htmlContent string) string {
	c, err := NewConverter()
	if err != nil {
		return ""
	}
	res, err := c.Convert(context.Background(), Input{HTML: htmlContent})
	if err != nil {
		return ""
	}
	return res.Markdown
}
