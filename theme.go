package pressmark

import "fmt"

// Theme identifies a named bundle of stylesheet and syntax palette.
// The set of themes is closed; ResolveTheme rejects anything else.
type Theme string

// Built-in themes.
const (
	ThemeProfessionalDark Theme = "professional-dark"
	ThemeDracula          Theme = "dracula"
	ThemeMinimalLight     Theme = "minimal-light"
	ThemeNord             Theme = "nord"
	ThemeGithubDark       Theme = "github-dark"
)

// DefaultTheme is used when no theme is specified.
const DefaultTheme = ThemeProfessionalDark

// ThemeSpec describes one theme: its stylesheet asset and the Chroma
// palette used for highlighted code blocks.
type ThemeSpec struct {
	ID          Theme
	Description string
	Stylesheet  string // asset name, without the .css extension
	Palette     string // chroma style name
}

// themeSpecs is the static registry. Every entry must have a matching
// stylesheet in internal/assets/themes.
var themeSpecs = map[Theme]ThemeSpec{
	ThemeProfessionalDark: {
		ID:          ThemeProfessionalDark,
		Description: "Sophisticated dark theme with blue accents (default)",
		Stylesheet:  "professional-dark",
		Palette:     "github-dark",
	},
	ThemeDracula: {
		ID:          ThemeDracula,
		Description: "Popular Dracula color scheme with vibrant neon accents",
		Stylesheet:  "dracula",
		Palette:     "dracula",
	},
	ThemeMinimalLight: {
		ID:          ThemeMinimalLight,
		Description: "Clean, professional light theme for formal documents",
		Stylesheet:  "minimal-light",
		Palette:     "friendly",
	},
	ThemeNord: {
		ID:          ThemeNord,
		Description: "Arctic-inspired blue-ish color scheme, easy on the eyes",
		Stylesheet:  "nord",
		Palette:     "nord",
	},
	ThemeGithubDark: {
		ID:          ThemeGithubDark,
		Description: "Familiar GitHub-inspired dark theme for developers",
		Stylesheet:  "github-dark",
		Palette:     "github-dark",
	},
}

// themeOrder fixes the listing order (registry maps are unordered).
var themeOrder = []Theme{
	ThemeProfessionalDark,
	ThemeDracula,
	ThemeMinimalLight,
	ThemeNord,
	ThemeGithubDark,
}

// ResolveTheme returns the spec for a theme identifier.
// Returns ErrUnknownTheme for identifiers outside the enumerated set.
func ResolveTheme(id Theme) (ThemeSpec, error) {
	spec, ok := themeSpecs[id]
	if !ok {
		return ThemeSpec{}, fmt.Errorf("%w: %q", ErrUnknownTheme, string(id))
	}
	return spec, nil
}

// Themes returns all theme specs in stable listing order.
func Themes() []ThemeSpec {
	specs := make([]ThemeSpec, 0, len(themeOrder))
	for _, id := range themeOrder {
		specs = append(specs, themeSpecs[id])
	}
	return specs
}
