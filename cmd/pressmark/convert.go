package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	pressmark "github.com/pressmark/pressmark"
	"github.com/pressmark/pressmark/internal/config"
)

// Sentinel errors for the convert command.
var (
	ErrMissingArgs    = errors.New("convert requires <input> and <output> arguments")
	ErrTooManyArgs    = errors.New("too many arguments")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// runConvert implements the convert subcommand. Startup failures
// (bad flags, unknown theme, missing stylesheet) surface as errors
// before any document is touched; per-document failures are reported
// but do not affect the return value, so a partial batch still exits
// cleanly.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positionals, err := parseConvertFlags(args)
	if err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return err
		}
	}

	inputRoot, outputRoot, err := resolvePaths(positionals, cfg)
	if err != nil {
		return err
	}

	theme := resolveThemeID(flags.theme, cfg.Theme)
	spec, err := pressmark.ResolveTheme(theme)
	if err != nil {
		return err
	}

	themesDir := flags.themesDir
	if themesDir == "" {
		themesDir = cfg.Themes.Dir
	}
	loader, err := pressmark.NewThemeLoader(themesDir)
	if err != nil {
		return err
	}

	// Fail fast: a missing stylesheet aborts before any job starts.
	if !loader.StylesheetExists(spec.Stylesheet) {
		return fmt.Errorf("%w: stylesheet for theme %q", pressmark.ErrStylesheetNotFound, theme)
	}

	workers := flags.workers
	if workers == 0 {
		workers = cfg.Workers
	}
	if err := validateWorkers(workers); err != nil {
		return err
	}

	page, err := resolvePageSettings(&flags.page, &cfg.Page)
	if err != nil {
		return err
	}

	opts := []pressmark.Option{pressmark.WithThemeLoader(loader)}
	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %q", ErrInvalidTimeout, flags.timeout)
		}
		opts = append(opts, pressmark.WithTimeout(d))
	}

	jobs, err := discoverJobs(inputRoot, outputRoot)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		fmt.Fprintf(env.Stdout, "No markdown files found in %s\n", inputRoot)
		return nil
	}

	if !flags.common.quiet {
		printRunHeader(env, theme, len(jobs), outputRoot)
	}

	pool := newConverterPool(workers, opts...)
	defer func() {
		if err := pool.Close(); err != nil {
			fmt.Fprintf(env.Stderr, "Warning: closing converters: %v\n", err)
		}
	}()

	params := &conversionParams{
		theme:    theme,
		page:     page,
		htmlOnly: flags.htmlOnly,
	}
	rep := &reporter{
		env:     env,
		quiet:   flags.common.quiet,
		verbose: flags.common.verbose,
	}
	results := convertBatch(ctx, pool, jobs, params, rep)

	printSummary(results, flags.common.quiet, env)

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Done. Output written to %s\n", outputRoot)
	}

	return nil
}

// resolvePaths extracts input and output roots from positionals, falling
// back to config defaults when only one or neither is given.
func resolvePaths(positionals []string, cfg *config.Config) (string, string, error) {
	switch len(positionals) {
	case 2:
		return positionals[0], positionals[1], nil
	case 1:
		if cfg.Output.DefaultDir != "" {
			return positionals[0], cfg.Output.DefaultDir, nil
		}
		return "", "", ErrMissingArgs
	case 0:
		if cfg.Input.DefaultDir != "" && cfg.Output.DefaultDir != "" {
			return cfg.Input.DefaultDir, cfg.Output.DefaultDir, nil
		}
		return "", "", ErrMissingArgs
	default:
		return "", "", fmt.Errorf("%w: %s", ErrTooManyArgs, strings.Join(positionals[2:], " "))
	}
}

// resolveThemeID picks the theme with flag > config > default precedence.
func resolveThemeID(flagTheme, cfgTheme string) pressmark.Theme {
	if flagTheme != "" {
		return pressmark.Theme(flagTheme)
	}
	if cfgTheme != "" {
		return pressmark.Theme(cfgTheme)
	}
	return pressmark.DefaultTheme
}

// resolvePageSettings merges page flags over config over defaults,
// then validates the result.
func resolvePageSettings(flags *pageFlags, cfg *config.PageConfig) (*pressmark.PageSettings, error) {
	page := pressmark.DefaultPageSettings()

	if cfg.Size != "" {
		page.Size = cfg.Size
	}
	if cfg.Orientation != "" {
		page.Orientation = cfg.Orientation
	}
	if cfg.Margin != 0 {
		page.Margin = cfg.Margin
	}

	if flags.size != "" {
		page.Size = flags.size
	}
	if flags.orientation != "" {
		page.Orientation = flags.orientation
	}
	if flags.margin != 0 {
		page.Margin = flags.margin
	}

	if err := page.Validate(); err != nil {
		return nil, err
	}
	return page, nil
}

// printRunHeader summarizes the batch before conversion begins.
func printRunHeader(env *Environment, theme pressmark.Theme, fileCount int, outputRoot string) {
	noun := "files"
	if fileCount == 1 {
		noun = "file"
	}
	fmt.Fprintf(env.Stdout, "Theme:  %s\n", theme)
	fmt.Fprintf(env.Stdout, "Files:  %d markdown %s\n", fileCount, noun)
	fmt.Fprintf(env.Stdout, "Output: %s\n\n", outputRoot)
}
