package pressmark

import (
	"errors"
	"fmt"

	"github.com/pressmark/pressmark/internal/assets"
)

// ThemeLoader defines the contract for loading theme stylesheets.
// Implementations may load from filesystem, embedded assets, S3,
// database, etc.
//
// The library provides NewThemeLoader() for filesystem-based loading
// with fallback to embedded defaults. Implement this interface for
// custom backends.
type ThemeLoader interface {
	// LoadStylesheet loads a theme stylesheet by name (without the .css
	// extension). Returns ErrStylesheetNotFound if it doesn't exist.
	LoadStylesheet(name string) (string, error)

	// StylesheetExists reports whether the stylesheet can be resolved.
	StylesheetExists(name string) bool
}

// NewThemeLoader creates a ThemeLoader for the given themes directory.
// If themesDir is empty, returns a loader using only embedded
// stylesheets. If themesDir is set, custom stylesheets take precedence
// with fallback to embedded.
//
// The directory holds one {name}.css file per theme.
//
// Returns ErrInvalidThemesDir if themesDir is set but not a valid,
// readable directory.
func NewThemeLoader(themesDir string) (ThemeLoader, error) {
	resolver, err := assets.NewThemeResolver(themesDir)
	if err != nil {
		if errors.Is(err, assets.ErrInvalidBasePath) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidThemesDir, themesDir)
		}
		return nil, err
	}
	return resolver, nil
}

// Compile-time interface checks: the internal loaders satisfy the
// public contract.
var (
	_ ThemeLoader = (*assets.ThemeResolver)(nil)
	_ ThemeLoader = (*assets.EmbeddedLoader)(nil)
	_ ThemeLoader = (*assets.FilesystemLoader)(nil)
)
