package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled substitutions applied before scanning.
var (
	// Tabs and the small fixed entity list, replaced in one pass. A single
	// pass means double-encoded entities like &amp;nbsp; decode once, to
	// the literal &nbsp; text.
	entityReplacer = strings.NewReplacer(
		"\t", " ",
		"&amp;", "&",
		"&nbsp;", " ",
		"&rarr;", "→",
	)

	// HTML comments, including ones spanning multiple lines.
	commentPattern = regexp.MustCompile(`(?s)<!--(.*?)-->`)
)

// HTMLPreprocessor defines the contract for raw HTML normalization.
type HTMLPreprocessor interface {
	PrepareHTML(content string) string
}

// EntityPreprocessor normalizes raw HTML before the scan: tab and entity
// substitution, then comment stripping.
type EntityPreprocessor struct{}

// PrepareHTML applies all normalizations to prepare HTML for scanning.
func (p *EntityPreprocessor) PrepareHTML(content string) string {
	content = entityReplacer.Replace(content)
	return commentPattern.ReplaceAllString(content, "")
}
