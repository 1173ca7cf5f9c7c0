package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrStylesheetNotFound indicates the requested stylesheet does not exist.
	ErrStylesheetNotFound = errors.New("stylesheet not found")

	// ErrInvalidThemeName indicates the theme name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidThemeName = errors.New("invalid theme name")

	// ErrInvalidBasePath indicates the configured themes directory is not a
	// valid directory.
	ErrInvalidBasePath = errors.New("invalid themes directory")

	// ErrAssetRead indicates an I/O error occurred while reading a stylesheet.
	ErrAssetRead = errors.New("failed to read stylesheet")

	// ErrPathTraversal indicates an attempt to access files outside the
	// themes directory.
	ErrPathTraversal = errors.New("path traversal detected")
)
