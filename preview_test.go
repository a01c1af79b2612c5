package html2md

// Notes:
// - goldmarkRenderer wraps goldmark's fragment in a standalone document;
//   these tests pin the document shell, the GFM extensions, and context
//   cancellation rather than goldmark's own rendering details

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestIsKnownPreviewStyle - Chroma Style Registry Lookup
// ---------------------------------------------------------------------------

func TestIsKnownPreviewStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		style string
		want  bool
	}{
		{"github", "github", true},
		{"monokai", "monokai", true},
		{"empty", "", false},
		{"unknown", "no-such-style", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isKnownPreviewStyle(tt.style); got != tt.want {
				t.Errorf("isKnownPreviewStyle(%q) = %v, want %v", tt.style, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGoldmarkRenderer_Render - Document Shell
// ---------------------------------------------------------------------------

func TestGoldmarkRenderer_Render(t *testing.T) {
	t.Parallel()

	renderer := newGoldmarkRenderer(defaultPreviewStyle)

	ctx := context.Background()
	out, err := renderer.Render(ctx, "# Title\n\nSome body text.")
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	doc := string(out)
	if !strings.HasPrefix(doc, "<!DOCTYPE html>") {
		t.Errorf("Render() should produce a standalone document, got %q", doc)
	}
	if !strings.Contains(doc, `<body class="markdown-preview">`) {
		t.Errorf("Render() missing body wrapper, got %q", doc)
	}
	if !strings.Contains(doc, "<h1") {
		t.Errorf("Render() missing rendered heading, got %q", doc)
	}
	if !strings.Contains(doc, "</html>") {
		t.Errorf("Render() document not closed, got %q", doc)
	}
}

// ---------------------------------------------------------------------------
// TestGoldmarkRenderer_GFM - GitHub Flavored Extensions
// ---------------------------------------------------------------------------

func TestGoldmarkRenderer_GFM(t *testing.T) {
	t.Parallel()

	renderer := newGoldmarkRenderer(defaultPreviewStyle)
	ctx := context.Background()

	table := "| a | b |\n| - | - |\n| 1 | 2 |"
	out, err := renderer.Render(ctx, table)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "<table") {
		t.Errorf("Render() should render GFM tables, got %q", out)
	}

	out, err = renderer.Render(ctx, "~~gone~~")
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "<del>") {
		t.Errorf("Render() should render strikethrough, got %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestGoldmarkRenderer_CodeHighlighting - Fenced Code Blocks
// ---------------------------------------------------------------------------

func TestGoldmarkRenderer_CodeHighlighting(t *testing.T) {
	t.Parallel()

	renderer := newGoldmarkRenderer(defaultPreviewStyle)

	ctx := context.Background()
	out, err := renderer.Render(ctx, "```go\nfunc main() {}\n```")
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	if !strings.Contains(string(out), "<pre") {
		t.Errorf("Render() should render fenced code blocks, got %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestGoldmarkRenderer_CancelledContext - Cancellation
// ---------------------------------------------------------------------------

func TestGoldmarkRenderer_CancelledContext(t *testing.T) {
	t.Parallel()

	renderer := newGoldmarkRenderer(defaultPreviewStyle)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := renderer.Render(ctx, "# Title")

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Render() error = %v, want %v", err, context.Canceled)
	}
}
