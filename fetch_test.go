package html2md

// Notes:
// - HTTPFetcher tests run against a local httptest server; nothing dials out
// - BrowserFetcher tests stop at the validation and context boundary so the
//   suite never launches Chrome

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestHTTPFetcher_Fetch - Plain HTTP Retrieval
// ---------------------------------------------------------------------------

func TestHTTPFetcher_Fetch(t *testing.T) {
	t.Parallel()

	uaCh := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uaCh <- r.Header.Get("User-Agent")
		fmt.Fprint(w, "<html><body>hi</body></html>")
	}))
	defer srv.Close()

	fetcher := NewHTTPFetcher(0)
	defer fetcher.Close()

	got, err := fetcher.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}

	if got != "<html><body>hi</body></html>" {
		t.Errorf("Fetch() = %q, want the served body", got)
	}
	if ua := <-uaCh; ua != fetchUserAgent {
		t.Errorf("User-Agent = %q, want %q", ua, fetchUserAgent)
	}
}

func TestHTTPFetcher_Fetch_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	fetcher := NewHTTPFetcher(0)
	defer fetcher.Close()

	_, err := fetcher.Fetch(context.Background(), srv.URL)

	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("Fetch() error = %v, want %v", err, ErrFetchFailed)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error should carry the HTTP status, got %q", err.Error())
	}
}

func TestHTTPFetcher_Fetch_CapsBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chunk := strings.Repeat("a", 1<<20)
		for i := 0; i < 11; i++ {
			if _, err := io.WriteString(w, chunk); err != nil {
				return // Client stopped reading at the cap
			}
		}
	}))
	defer srv.Close()

	fetcher := NewHTTPFetcher(0)
	defer fetcher.Close()

	got, err := fetcher.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}

	if len(got) != maxFetchBytes {
		t.Errorf("Fetch() read %d bytes, want the %d byte cap", len(got), maxFetchBytes)
	}
}

func TestHTTPFetcher_Fetch_InvalidURL(t *testing.T) {
	t.Parallel()

	fetcher := NewHTTPFetcher(0)
	defer fetcher.Close()

	_, err := fetcher.Fetch(context.Background(), "ftp://example.com")

	if !errors.Is(err, ErrInvalidFetchURL) {
		t.Errorf("Fetch() error = %v, want %v", err, ErrInvalidFetchURL)
	}
}

// ---------------------------------------------------------------------------
// TestNewHTTPFetcher - Factory Defaults
// ---------------------------------------------------------------------------

func TestNewHTTPFetcher(t *testing.T) {
	t.Parallel()

	fetcher := NewHTTPFetcher(0)
	if fetcher.client.Timeout != defaultTimeout {
		t.Errorf("timeout = %v, want default %v", fetcher.client.Timeout, defaultTimeout)
	}

	fetcher = NewHTTPFetcher(5 * time.Second)
	if fetcher.client.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want %v", fetcher.client.Timeout, 5*time.Second)
	}
}

// ---------------------------------------------------------------------------
// TestValidateFetchURL - URL Validation
// ---------------------------------------------------------------------------

func TestValidateFetchURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rawURL  string
		wantErr error
	}{
		{"https", "https://example.com/page", nil},
		{"http", "http://example.com", nil},
		{"ftp scheme", "ftp://example.com/file", ErrInvalidFetchURL},
		{"relative path", "docs/page.html", ErrInvalidFetchURL},
		{"missing host", "https://", ErrInvalidFetchURL},
		{"missing scheme", "://bad", ErrInvalidFetchURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFetchURL(tt.rawURL)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateFetchURL(%q) error = %v, want %v", tt.rawURL, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestBrowserFetcher - Pre-Launch Boundary
// ---------------------------------------------------------------------------

func TestNewBrowserFetcher(t *testing.T) {
	t.Parallel()

	fetcher := NewBrowserFetcher(0)
	if fetcher.timeout != defaultTimeout {
		t.Errorf("timeout = %v, want default %v", fetcher.timeout, defaultTimeout)
	}

	fetcher = NewBrowserFetcher(5 * time.Second)
	if fetcher.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want %v", fetcher.timeout, 5*time.Second)
	}
}

func TestBrowserFetcher_Fetch_InvalidURL(t *testing.T) {
	t.Parallel()

	fetcher := NewBrowserFetcher(0)

	_, err := fetcher.Fetch(context.Background(), "ftp://example.com")

	if !errors.Is(err, ErrInvalidFetchURL) {
		t.Errorf("Fetch() error = %v, want %v", err, ErrInvalidFetchURL)
	}
	if fetcher.browser != nil {
		t.Error("browser should not launch for an invalid URL")
	}
}

func TestBrowserFetcher_Fetch_CancelledContext(t *testing.T) {
	t.Parallel()

	fetcher := NewBrowserFetcher(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fetcher.Fetch(ctx, "https://example.com")

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Fetch() error = %v, want %v", err, context.Canceled)
	}
	if fetcher.browser != nil {
		t.Error("browser should not launch under a cancelled context")
	}
}

func TestBrowserFetcher_Close_WithoutLaunch(t *testing.T) {
	t.Parallel()

	fetcher := NewBrowserFetcher(0)

	if err := fetcher.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
