package main

import (
	"errors"
	"os"

	html2md "github.com/alnah/go-html2md"
	"github.com/alnah/go-html2md/internal/config"
)

// Exit codes for the html2md CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitFetch   = 4 // Fetch or browser errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Fetch and browser errors (exit 4)
	if errors.Is(err, html2md.ErrFetchFailed) ||
		errors.Is(err, html2md.ErrBrowserConnect) ||
		errors.Is(err, html2md.ErrPageCreate) ||
		errors.Is(err, html2md.ErrPageLoad) {
		return ExitFetch
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadHTML) ||
		errors.Is(err, ErrWriteMarkdown) ||
		errors.Is(err, ErrWritePreview) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, html2md.ErrEmptyHTML) ||
		errors.Is(err, html2md.ErrInvalidBaseURL) ||
		errors.Is(err, html2md.ErrUnknownPreviewStyle) ||
		errors.Is(err, html2md.ErrInvalidFetchURL) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkers) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrInvalidDebounce) ||
		errors.Is(err, ErrWatchInput) {
		return ExitUsage
	}

	return ExitGeneral
}
