package html2md

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Compile-time interface checks
var (
	_ Fetcher = (*HTTPFetcher)(nil)
	_ Fetcher = (*BrowserFetcher)(nil)
)

// maxFetchBytes caps the HTML read from a fetched page (10 MiB).
const maxFetchBytes = 10 << 20

// fetchUserAgent identifies the library in outgoing requests.
const fetchUserAgent = "go-html2md/1.0 (+https://github.com/alnah/go-html2md)"

// Fetcher retrieves the HTML of a web page.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
	Close() error
}

// HTTPFetcher retrieves pages with plain HTTP GET requests. It does not
// execute JavaScript; use BrowserFetcher for script-rendered pages.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher with the given request timeout.
// A non-positive timeout falls back to the default.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch performs a GET request and returns the raw response body.
func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	if err := validateFetchURL(pageURL); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFetchURL, err)
	}
	req.Header.Set("User-Agent", fetchUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %s", ErrFetchFailed, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", ErrFetchFailed, err)
	}

	return string(body), nil
}

// Close releases idle connections. HTTPFetcher holds no other resources.
func (f *HTTPFetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

// validateFetchURL checks that rawURL is an absolute http(s) URL.
func validateFetchURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFetchURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q (must be http or https)", ErrInvalidFetchURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidFetchURL)
	}
	return nil
}

// BrowserFetcher retrieves pages with headless Chrome via go-rod, executing
// JavaScript before serializing the DOM.
// Rod automatically downloads Chromium on first run if not found.
type BrowserFetcher struct {
	browser *rod.Browser
	timeout time.Duration
}

// NewBrowserFetcher creates a BrowserFetcher with the given page-load
// timeout. A non-positive timeout falls back to the default. The browser
// is not launched until the first Fetch.
func NewBrowserFetcher(timeout time.Duration) *BrowserFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &BrowserFetcher{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (f *BrowserFetcher) ensureBrowser() error {
	if f.browser != nil {
		return nil
	}

	// Configure launcher
	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	f.browser = rod.New().ControlURL(u)
	if err := f.browser.Connect(); err != nil {
		f.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Fetch navigates to pageURL in headless Chrome, waits for the load event,
// and returns the serialized DOM.
// Returns explicit errors instead of panicking when browser operations fail.
func (f *BrowserFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	if err := validateFetchURL(pageURL); err != nil {
		return "", err
	}

	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := f.ensureBrowser(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{URL: pageURL})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Wait for page to load with timeout from context or default
	timeout := f.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return "", context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	// Check context after page load
	if err := ctx.Err(); err != nil {
		return "", err
	}

	htmlContent, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	return htmlContent, nil
}

// Close releases browser resources.
func (f *BrowserFetcher) Close() error {
	if f.browser != nil {
		err := f.browser.Close()
		f.browser = nil
		return err
	}
	return nil
}
