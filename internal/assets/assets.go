package assets

import (
	"fmt"
	"unicode"
)

// ThemeLoader defines the contract for loading theme stylesheets.
// Implementations may load from embedded assets or a directory on disk.
type ThemeLoader interface {
	// LoadStylesheet loads a stylesheet by theme name (without the .css
	// extension). Returns ErrStylesheetNotFound if it doesn't exist and
	// ErrInvalidThemeName if the name contains invalid characters.
	LoadStylesheet(name string) (string, error)

	// StylesheetExists reports whether the stylesheet can be resolved.
	// Used for the fail-fast check before a batch starts.
	StylesheetExists(name string) bool
}

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStylesheet loads a stylesheet by name using the embedded loader.
func LoadStylesheet(name string) (string, error) {
	return defaultLoader.LoadStylesheet(name)
}

// validThemeName restricts names to letters, digits, hyphens and
// underscores: anything a loader would join into a file path must not
// carry separators, dots or other surprises.
func validThemeName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidThemeName)
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			continue
		}
		return fmt.Errorf("%w: %q", ErrInvalidThemeName, name)
	}
	return nil
}
