package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pressmark.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
theme: nord
themes:
  dir: /opt/themes
input:
  defaultDir: docs
output:
  defaultDir: dist
page:
  size: a4
  orientation: landscape
  margin: 1.0
workers: 4
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Theme != "nord" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "nord")
	}
	if cfg.Themes.Dir != "/opt/themes" {
		t.Errorf("Themes.Dir = %q", cfg.Themes.Dir)
	}
	if cfg.Input.DefaultDir != "docs" || cfg.Output.DefaultDir != "dist" {
		t.Errorf("default dirs = %q, %q", cfg.Input.DefaultDir, cfg.Output.DefaultDir)
	}
	if cfg.Page.Size != "a4" || cfg.Page.Orientation != "landscape" || cfg.Page.Margin != 1.0 {
		t.Errorf("page = %+v", cfg.Page)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "theme: dracula\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Theme != "dracula" {
		t.Errorf("Theme = %q", cfg.Theme)
	}
	// Unset fields keep zero values; merging happens at the CLI layer.
	if cfg.Workers != 0 || cfg.Page.Margin != 0 {
		t.Errorf("unset fields not zero: %+v", cfg)
	}
}

func TestLoadConfigStrict(t *testing.T) {
	t.Parallel()

	// Unknown keys are an error, catching typos like "thme".
	path := writeConfig(t, "thme: nord\n")

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Fatalf("LoadConfig() error = %v, want %v", err, ErrConfigParse)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "theme: [unclosed\n")

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Fatalf("LoadConfig() error = %v, want %v", err, ErrConfigParse)
	}
}

func TestLoadConfigNotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("LoadConfig() error = %v, want %v", err, ErrConfigNotFound)
	}
}

func TestLoadConfigEmptyName(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig("")
	if !errors.Is(err, ErrEmptyConfigName) {
		t.Fatalf("LoadConfig(\"\") error = %v, want %v", err, ErrEmptyConfigName)
	}
}

func TestLoadConfigByNameNotFound(t *testing.T) {
	t.Parallel()

	// A bare name (no separator) is searched, not opened directly.
	_, err := LoadConfig("definitely-not-a-real-config-name")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("LoadConfig(name) error = %v, want %v", err, ErrConfigNotFound)
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Theme != "" || cfg.Workers != 0 {
		t.Errorf("DefaultConfig() not neutral: %+v", cfg)
	}
}
