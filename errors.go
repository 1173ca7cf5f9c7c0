package pressmark

import "errors"

// Sentinel errors for library operations.
var (
	ErrUnknownTheme   = errors.New("unknown theme")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Theme asset errors.
	ErrStylesheetNotFound = errors.New("theme stylesheet not found")
	ErrInvalidThemesDir   = errors.New("invalid themes directory")
)
