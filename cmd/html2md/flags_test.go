package main

// Notes:
// - parseConvertFlags: we test defaults, every flag group, short forms,
//   positional argument passthrough, and error handling for unknown flags.
// - Interspersed flags and positionals are allowed by pflag; we pin that
//   behavior since discovery depends on positional order being preserved.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestParseConvertFlags_Defaults - Zero values without flags
// ---------------------------------------------------------------------------

func TestParseConvertFlags_Defaults(t *testing.T) {
	t.Parallel()

	f, positional, err := parseConvertFlags([]string{"page.html"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.output != "" {
		t.Errorf("output = %q, want empty", f.output)
	}
	if f.workers != 0 {
		t.Errorf("workers = %d, want 0", f.workers)
	}
	if f.common.config != "" {
		t.Errorf("config = %q, want empty", f.common.config)
	}
	if f.common.quiet || f.common.verbose {
		t.Error("quiet and verbose should default to false")
	}
	if f.fetch.renderJS {
		t.Error("renderJS should default to false")
	}
	if f.fetch.timeout != "" {
		t.Errorf("timeout = %q, want empty", f.fetch.timeout)
	}
	if f.preview.enabled || f.preview.disabled {
		t.Error("preview flags should default to false")
	}
	if f.preview.style != "" {
		t.Errorf("preview style = %q, want empty", f.preview.style)
	}
	if f.watch.debounce != "" {
		t.Errorf("debounce = %q, want empty", f.watch.debounce)
	}

	if len(positional) != 1 || positional[0] != "page.html" {
		t.Errorf("positional = %v, want [page.html]", positional)
	}
}

// ---------------------------------------------------------------------------
// TestParseConvertFlags_AllFlags - Every flag parses
// ---------------------------------------------------------------------------

func TestParseConvertFlags_AllFlags(t *testing.T) {
	t.Parallel()

	args := []string{
		"--output", "out",
		"--workers", "4",
		"--config", "site.yaml",
		"--quiet",
		"--verbose",
		"--render-js",
		"--timeout", "45s",
		"--preview",
		"--preview-style", "monokai",
		"--no-preview",
		"--debounce", "500ms",
		"docs",
	}

	f, positional, err := parseConvertFlags(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.output != "out" {
		t.Errorf("output = %q, want out", f.output)
	}
	if f.workers != 4 {
		t.Errorf("workers = %d, want 4", f.workers)
	}
	if f.common.config != "site.yaml" {
		t.Errorf("config = %q, want site.yaml", f.common.config)
	}
	if !f.common.quiet || !f.common.verbose {
		t.Error("quiet and verbose should be set")
	}
	if !f.fetch.renderJS {
		t.Error("renderJS should be set")
	}
	if f.fetch.timeout != "45s" {
		t.Errorf("timeout = %q, want 45s", f.fetch.timeout)
	}
	if !f.preview.enabled || !f.preview.disabled {
		t.Error("preview and no-preview should both be set")
	}
	if f.preview.style != "monokai" {
		t.Errorf("preview style = %q, want monokai", f.preview.style)
	}
	if f.watch.debounce != "500ms" {
		t.Errorf("debounce = %q, want 500ms", f.watch.debounce)
	}

	if len(positional) != 1 || positional[0] != "docs" {
		t.Errorf("positional = %v, want [docs]", positional)
	}
}

// ---------------------------------------------------------------------------
// TestParseConvertFlags_ShortForms - Short flag aliases
// ---------------------------------------------------------------------------

func TestParseConvertFlags_ShortForms(t *testing.T) {
	t.Parallel()

	f, positional, err := parseConvertFlags([]string{
		"-o", "out.md", "-w", "2", "-c", "cfg.yaml", "-t", "1m", "-q", "-v", "page.html",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.output != "out.md" {
		t.Errorf("-o = %q, want out.md", f.output)
	}
	if f.workers != 2 {
		t.Errorf("-w = %d, want 2", f.workers)
	}
	if f.common.config != "cfg.yaml" {
		t.Errorf("-c = %q, want cfg.yaml", f.common.config)
	}
	if f.fetch.timeout != "1m" {
		t.Errorf("-t = %q, want 1m", f.fetch.timeout)
	}
	if !f.common.quiet {
		t.Error("-q should set quiet")
	}
	if !f.common.verbose {
		t.Error("-v should set verbose")
	}
	if len(positional) != 1 || positional[0] != "page.html" {
		t.Errorf("positional = %v, want [page.html]", positional)
	}
}

// ---------------------------------------------------------------------------
// TestParseConvertFlags_MultiplePositionals - Inputs preserved in order
// ---------------------------------------------------------------------------

func TestParseConvertFlags_MultiplePositionals(t *testing.T) {
	t.Parallel()

	f, positional, err := parseConvertFlags([]string{
		"a.html", "--quiet", "b.html", "https://example.com", "-",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !f.common.quiet {
		t.Error("interspersed --quiet should be parsed")
	}

	want := []string{"a.html", "b.html", "https://example.com", "-"}
	if len(positional) != len(want) {
		t.Fatalf("positional = %v, want %v", positional, want)
	}
	for i := range want {
		if positional[i] != want[i] {
			t.Errorf("positional[%d] = %q, want %q", i, positional[i], want[i])
		}
	}
}

// ---------------------------------------------------------------------------
// TestParseConvertFlags_Errors - Unknown flags and help
// ---------------------------------------------------------------------------

func TestParseConvertFlags_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseConvertFlags([]string{"--nonsense"})
		if err == nil {
			t.Fatal("expected error for unknown flag")
		}
	})

	t.Run("help is flag.ErrHelp", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseConvertFlags([]string{"--help"})
		if !errors.Is(err, flag.ErrHelp) {
			t.Fatalf("expected flag.ErrHelp, got %v", err)
		}
	})

	t.Run("bad worker value", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseConvertFlags([]string{"--workers", "many"})
		if err == nil {
			t.Fatal("expected error for non-numeric workers")
		}
	})
}
