// Package html2md converts HTML documents to readable Markdown.
//
// # Quick Start
//
// For one-off conversions, the package-level Convert never fails:
//
//	markdown := html2md.Convert("<h1>Hello</h1><p>World</p>")
//
// For control over cancellation, link resolution, and preview rendering,
// create a Converter:
//
//	conv, err := html2md.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, html2md.Input{
//	    HTML:    page,
//	    BaseURL: "https://example.com/docs/",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.md", []byte(result.Markdown), 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. HTML preprocessing (tab and entity substitution, comment stripping)
//  2. Single-pass scan emitting Markdown (headings, emphasis, links, lists,
//     code blocks; script/style/nav subtrees discarded)
//  3. Cleanup (line tidying, blank-line capping, artifact substitutions)
//  4. Relative link resolution against Input.BaseURL (if provided)
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := html2md.NewConverter(
//	    html2md.WithTimeout(10 * time.Second),
//	    html2md.WithPreview("monokai"),
//	)
//
// WithPreview renders the produced Markdown back to a standalone HTML
// document (result.Preview) via Goldmark with chroma syntax highlighting,
// for eyeballing conversion results.
//
// # Fetching Pages
//
// Fetchers retrieve page HTML for conversion. HTTPFetcher issues a plain
// GET; BrowserFetcher drives headless Chrome for JavaScript-rendered pages.
// Service ties a fetcher and a converter together:
//
//	svc, err := html2md.NewService(html2md.NewHTTPFetcher(0))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer svc.Close()
//
//	result, err := svc.ConvertURL(ctx, "https://example.com/article")
//
// ConvertURL resolves relative links in the output against the fetched URL.
//
// # Browser Requirements
//
// Only BrowserFetcher requires Chrome/Chromium. The go-rod library
// automatically downloads a managed Chromium instance on first run
// (~/.cache/rod/browser/). Use ROD_BROWSER_BIN to specify a custom Chrome
// binary; the sandbox is disabled automatically in CI environments.
package html2md
