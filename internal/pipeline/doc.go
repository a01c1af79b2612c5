// Package pipeline implements the HTML-to-Markdown conversion pipeline.
//
// This package handles the preprocessing, scanning, and cleanup stages:
//   - HTML preprocessing (entity decoding, tab normalization, comment removal)
//   - single-pass tag scanning and Markdown emission
//   - Markdown cleanup (line tidying, scan artifact removal)
//   - relative link resolution against a base URL
//
// Preview rendering and page fetching are handled separately by the root
// html2md package using Goldmark and headless Chrome (go-rod). This
// separation keeps the pipeline focused on the text transformation itself,
// while the root package owns network and browser concerns.
package pipeline
