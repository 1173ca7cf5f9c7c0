package assets

import "errors"

// ThemeResolver combines a custom filesystem loader with the embedded
// loader. When a themes directory is configured, it is tried first, with
// fallback to the embedded stylesheets when the theme is not found there.
type ThemeResolver struct {
	custom   ThemeLoader // nil if no themes directory configured
	embedded ThemeLoader
}

// NewThemeResolver creates a ThemeResolver.
// If themesDir is empty, only embedded stylesheets are used.
// Returns error if themesDir is set but invalid.
func NewThemeResolver(themesDir string) (*ThemeResolver, error) {
	resolver := &ThemeResolver{
		embedded: NewEmbeddedLoader(),
	}

	if themesDir != "" {
		fsLoader, err := NewFilesystemLoader(themesDir)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadStylesheet loads a stylesheet, trying the themes directory first
// if one is configured.
func (r *ThemeResolver) LoadStylesheet(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStylesheet(name)
	}

	content, err := r.custom.LoadStylesheet(name)
	if err == nil {
		return content, nil
	}

	// Only fall back for "not found", not validation or I/O errors.
	if !errors.Is(err, ErrStylesheetNotFound) {
		return "", err
	}

	return r.embedded.LoadStylesheet(name)
}

// StylesheetExists reports whether the stylesheet resolves through
// either loader.
func (r *ThemeResolver) StylesheetExists(name string) bool {
	if r.custom != nil && r.custom.StylesheetExists(name) {
		return true
	}
	return r.embedded.StylesheetExists(name)
}

// Compile-time interface check.
var _ ThemeLoader = (*ThemeResolver)(nil)
