package html2md

import (
	"bytes"
	"context"
	"fmt"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// previewTemplate wraps goldmark's fragment output in a complete HTML5 document.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Preview</title>
</head>
<body class="markdown-preview">
%s
</body>
</html>`

// previewRenderer abstracts Markdown-to-HTML preview rendering.
type previewRenderer interface {
	Render(ctx context.Context, markdown string) ([]byte, error)
}

// goldmarkRenderer renders the produced Markdown back to HTML using
// goldmark (pure Go) for eyeballing conversion results.
type goldmarkRenderer struct {
	md goldmark.Markdown
}

// newGoldmarkRenderer creates a renderer with GFM extensions and syntax
// highlighting using the named chroma style.
func newGoldmarkRenderer(style string) *goldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithStyle(style), // Inline colors, no external stylesheet needed
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Generate IDs for headings
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
			// Note: WithUnsafe() intentionally NOT used for security.
			// Note: WithHardWraps() intentionally NOT used: the converter
			// soft-wraps long paragraphs, and hard wraps would turn every
			// wrapped source line into a <br>.
		),
	)
	return &goldmarkRenderer{md: md}
}

// isKnownPreviewStyle reports whether name is a registered chroma style.
func isKnownPreviewStyle(name string) bool {
	_, ok := styles.Registry[name]
	return ok
}

// Render converts Markdown content to a standalone HTML5 document.
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func (r *goldmarkRenderer) Render(ctx context.Context, markdown string) ([]byte, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		html []byte
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(markdown), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrPreviewRender, err)}
			return
		}
		done <- result{html: []byte(fmt.Sprintf(previewTemplate, buf.String()))}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}
