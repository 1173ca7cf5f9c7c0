package assets

import (
	"embed"
	"fmt"
)

//go:embed themes/*.css
var themes embed.FS

// EmbeddedLoader loads theme stylesheets from the embedded filesystem.
// Implements ThemeLoader.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStylesheet loads a stylesheet from embedded assets by theme name.
// The name should not include the .css extension.
func (e *EmbeddedLoader) LoadStylesheet(name string) (string, error) {
	if err := validThemeName(name); err != nil {
		return "", err
	}

	content, err := themes.ReadFile("themes/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStylesheetNotFound, name)
	}

	return string(content), nil
}

// StylesheetExists reports whether the embedded stylesheet is present.
func (e *EmbeddedLoader) StylesheetExists(name string) bool {
	if err := validThemeName(name); err != nil {
		return false
	}
	_, err := themes.ReadFile("themes/" + name + ".css")
	return err == nil
}

// Compile-time interface check.
var _ ThemeLoader = (*EmbeddedLoader)(nil)
