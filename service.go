package html2md

import (
	"context"
	"fmt"
)

// Service orchestrates the fetch-and-convert flow: retrieve a page's HTML,
// then run it through the conversion pipeline with the page URL as the base
// for relative link resolution.
type Service struct {
	fetcher   Fetcher
	converter *Converter
}

// NewService creates a Service around the given fetcher.
// Options are forwarded to the underlying Converter.
func NewService(fetcher Fetcher, opts ...Option) (*Service, error) {
	c, err := NewConverter(opts...)
	if err != nil {
		return nil, err
	}
	return &Service{fetcher: fetcher, converter: c}, nil
}

// ConvertURL fetches pageURL and converts the retrieved HTML to Markdown.
// The page URL becomes the base URL for relative link resolution.
func (s *Service) ConvertURL(ctx context.Context, pageURL string) (*ConvertResult, error) {
	htmlContent, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	return s.converter.Convert(ctx, Input{HTML: htmlContent, BaseURL: pageURL})
}

// Convert converts already-retrieved HTML, delegating to the underlying
// Converter.
func (s *Service) Convert(ctx context.Context, input Input) (*ConvertResult, error) {
	return s.converter.Convert(ctx, input)
}

// Close releases fetcher resources (headless Chrome browser, if launched).
func (s *Service) Close() error {
	if s.fetcher != nil {
		return s.fetcher.Close()
	}
	return nil
}
