package pipeline

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// linkTargetPattern matches the target portion of an inline Markdown link,
// i.e. the parenthesized part of [text](target).
var linkTargetPattern = regexp.MustCompile(`\]\(([^)]+)\)`)

// ResolveRelativeLinks rewrites relative link targets in converted Markdown
// to absolute URLs resolved against baseURL. If baseURL is empty, returns
// the Markdown unchanged.
//
// Rewrites:
//   - relative paths (page.html, ../up/page.html, /rooted/page.html)
//
// Does NOT rewrite:
//   - absolute URLs (http://, https://, file://) and protocol-relative URLs
//   - fragment-only targets (#section)
//   - data: and mailto: targets
func ResolveRelativeLinks(markdown, baseURL string) (string, error) {
	if baseURL == "" {
		return markdown, nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base URL %q: %w", baseURL, err)
	}
	if !base.IsAbs() {
		return "", fmt.Errorf("base URL %q is not absolute", baseURL)
	}

	resolved := linkTargetPattern.ReplaceAllStringFunc(markdown, func(match string) string {
		target := match[2 : len(match)-1]
		if !isRelativeTarget(target) {
			return match
		}

		ref, err := url.Parse(target)
		if err != nil {
			return match // Leave unparseable targets untouched
		}

		return "](" + base.ResolveReference(ref).String() + ")"
	})

	return resolved, nil
}

// isRelativeTarget returns true if the link target should be resolved.
func isRelativeTarget(target string) bool {
	if target == "" {
		return false
	}

	// Skip URLs (http, https, file, data, mailto, protocol-relative)
	if strings.HasPrefix(target, "http://") ||
		strings.HasPrefix(target, "https://") ||
		strings.HasPrefix(target, "file://") ||
		strings.HasPrefix(target, "data:") ||
		strings.HasPrefix(target, "mailto:") ||
		strings.HasPrefix(target, "//") {
		return false
	}

	// Skip anchors within the same page
	if strings.HasPrefix(target, "#") {
		return false
	}

	return true
}
