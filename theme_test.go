package pressmark

import (
	"errors"
	"testing"
)

func TestResolveTheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		theme   Theme
		wantErr error
	}{
		{name: "professional dark", theme: ThemeProfessionalDark},
		{name: "dracula", theme: ThemeDracula},
		{name: "minimal light", theme: ThemeMinimalLight},
		{name: "nord", theme: ThemeNord},
		{name: "github dark", theme: ThemeGithubDark},
		{name: "unknown theme", theme: Theme("solarized"), wantErr: ErrUnknownTheme},
		{name: "empty theme", theme: Theme(""), wantErr: ErrUnknownTheme},
		{name: "case sensitive", theme: Theme("Dracula"), wantErr: ErrUnknownTheme},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spec, err := ResolveTheme(tt.theme)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ResolveTheme(%q) error = %v, want %v", tt.theme, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("ResolveTheme(%q) unexpected error: %v", tt.theme, err)
			}
			if spec.ID != tt.theme {
				t.Errorf("spec.ID = %q, want %q", spec.ID, tt.theme)
			}
			if spec.Stylesheet == "" {
				t.Error("spec.Stylesheet is empty")
			}
			if spec.Palette == "" {
				t.Error("spec.Palette is empty")
			}
			if spec.Description == "" {
				t.Error("spec.Description is empty")
			}
		})
	}
}

func TestDefaultThemeResolves(t *testing.T) {
	t.Parallel()

	spec, err := ResolveTheme(DefaultTheme)
	if err != nil {
		t.Fatalf("ResolveTheme(DefaultTheme) error: %v", err)
	}
	if spec.ID != ThemeProfessionalDark {
		t.Errorf("DefaultTheme = %q, want %q", spec.ID, ThemeProfessionalDark)
	}
}

func TestThemesOrder(t *testing.T) {
	t.Parallel()

	specs := Themes()

	if len(specs) != 5 {
		t.Fatalf("len(Themes()) = %d, want 5", len(specs))
	}

	want := []Theme{
		ThemeProfessionalDark,
		ThemeDracula,
		ThemeMinimalLight,
		ThemeNord,
		ThemeGithubDark,
	}
	for i, spec := range specs {
		if spec.ID != want[i] {
			t.Errorf("Themes()[%d].ID = %q, want %q", i, spec.ID, want[i])
		}
	}
}

func TestThemesStable(t *testing.T) {
	t.Parallel()

	first := Themes()
	second := Themes()

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("listing order changed between calls at index %d: %q vs %q",
				i, first[i].ID, second[i].ID)
		}
	}
}
