package pipeline

// Notes:
// - Tests ResolveRelativeLinks through its public API only
// - Rooted paths (/a/b) resolve against the base host, unlike the usual
//   filesystem notion of absolute: on the web they are host-relative
// - Unparseable individual targets are left untouched rather than failing
//   the whole document; only a bad base URL is an error

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestResolveRelativeLinks - Main Function Tests
// ---------------------------------------------------------------------------

func TestResolveRelativeLinks(t *testing.T) {
	t.Parallel()

	base := "https://example.com/docs/page.html"

	tests := []struct {
		name     string
		markdown string
		base     string
		want     string
	}{
		{
			name:     "relative resolved against base directory",
			markdown: "[a](other.html)",
			base:     base,
			want:     "[a](https://example.com/docs/other.html)",
		},
		{
			name:     "parent directory resolved",
			markdown: "[a](../up.html)",
			base:     base,
			want:     "[a](https://example.com/up.html)",
		},
		{
			name:     "rooted path resolved against host",
			markdown: "[a](/root.html)",
			base:     base,
			want:     "[a](https://example.com/root.html)",
		},
		{
			name:     "absolute URL unchanged",
			markdown: "[a](https://other.org/x)",
			base:     base,
			want:     "[a](https://other.org/x)",
		},
		{
			name:     "protocol-relative URL unchanged",
			markdown: "[a](//cdn.example.com/x)",
			base:     base,
			want:     "[a](//cdn.example.com/x)",
		},
		{
			name:     "anchor unchanged",
			markdown: "[a](#section)",
			base:     base,
			want:     "[a](#section)",
		},
		{
			name:     "mailto unchanged",
			markdown: "[a](mailto:x@example.com)",
			base:     base,
			want:     "[a](mailto:x@example.com)",
		},
		{
			name:     "data URI unchanged",
			markdown: "[a](data:text/plain,hi)",
			base:     base,
			want:     "[a](data:text/plain,hi)",
		},
		{
			name:     "empty base returns unchanged",
			markdown: "[a](other.html)",
			base:     "",
			want:     "[a](other.html)",
		},
		{
			name:     "multiple links all resolved",
			markdown: "[a](x.html) and [b](y.html)",
			base:     base,
			want:     "[a](https://example.com/docs/x.html) and [b](https://example.com/docs/y.html)",
		},
		{
			name:     "surrounding text untouched",
			markdown: "before [a](x.html) after (not a link)",
			base:     base,
			want:     "before [a](https://example.com/docs/x.html) after (not a link)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveRelativeLinks(tt.markdown, tt.base)
			if err != nil {
				t.Fatalf("ResolveRelativeLinks() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveRelativeLinks() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolveRelativeLinks_BadBase - Error Cases
// ---------------------------------------------------------------------------

func TestResolveRelativeLinks_BadBase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
	}{
		{"unparseable base", "://missing-scheme"},
		{"relative base", "docs/page.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ResolveRelativeLinks("[a](x.html)", tt.base)
			if err == nil {
				t.Fatalf("ResolveRelativeLinks() with base %q expected error, got nil", tt.base)
			}
			if !strings.Contains(err.Error(), tt.base) {
				t.Errorf("error %q should name the offending base %q", err, tt.base)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsRelativeTarget - Helper Function Tests
// ---------------------------------------------------------------------------

func TestIsRelativeTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		target string
		want   bool
	}{
		// Relative targets (should return true)
		{"./page.html", true},
		{"pages/one.html", true},
		{"../parent.html", true},
		{"page.html", true},
		{"/rooted/page.html", true},

		// Non-relative targets (should return false)
		{"", false},
		{"http://example.com/x", false},
		{"https://example.com/x", false},
		{"file:///abs/path.html", false},
		{"data:text/plain,hi", false},
		{"mailto:x@example.com", false},
		{"//cdn.example.com/x", false},
		{"#anchor", false},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			t.Parallel()

			if got := isRelativeTarget(tt.target); got != tt.want {
				t.Errorf("isRelativeTarget(%q) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}
