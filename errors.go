package html2md

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyHTML      = errors.New("HTML content cannot be empty")
	ErrInvalidBaseURL = errors.New("invalid base URL")

	// Preview rendering errors.
	ErrUnknownPreviewStyle = errors.New("unknown preview style")
	ErrPreviewRender       = errors.New("preview rendering failed")

	// Fetch errors.
	ErrInvalidFetchURL = errors.New("invalid fetch URL")
	ErrFetchFailed     = errors.New("fetch failed")
	ErrBrowserConnect  = errors.New("failed to connect to browser")
	ErrPageCreate      = errors.New("failed to create browser page")
	ErrPageLoad        = errors.New("failed to load page")
)
