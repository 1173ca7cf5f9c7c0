package pressmark

import (
	"context"
	"errors"
	"fmt"

	"github.com/pressmark/pressmark/internal/assets"
	"github.com/pressmark/pressmark/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ pdfConverter           = (*rodConverter)(nil)
	_ pdfRenderer            = (*rodRenderer)(nil)
	_ assets.ThemeLoader     = (*assets.EmbeddedLoader)(nil)
)

// Converter orchestrates the markdown-to-PDF conversion pipeline.
// Create with NewConverter(), use Convert() per document, and Close()
// when done.
type Converter struct {
	cfg           converterConfig
	themeLoader   ThemeLoader
	htmlConverter pipeline.HTMLConverter
	pdfConverter  pdfConverter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithThemeLoader).
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:           converterConfig{timeout: defaultTimeout},
		themeLoader:   assets.NewEmbeddedLoader(),
		htmlConverter: pipeline.NewGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// Convert runs the full pipeline and returns the result containing the
// assembled HTML and (unless Input.HTMLOnly) the PDF bytes. The context
// is used for cancellation and timeout. Recovers from internal panics to
// prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	theme := input.Theme
	if theme == "" {
		theme = DefaultTheme
	}
	spec, err := ResolveTheme(theme)
	if err != nil {
		return nil, err
	}

	// Highlight CSS for the theme's code palette
	highlightCSS, err := pipeline.HighlightCSS(spec.Palette)
	if err != nil {
		return nil, fmt.Errorf("generating highlight CSS: %w", err)
	}

	// Convert Markdown to an HTML fragment
	fragment, err := c.htmlConverter.ToHTML(ctx, input.Markdown)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	// Theme stylesheet
	themeCSS, err := c.themeLoader.LoadStylesheet(spec.Stylesheet)
	if err != nil {
		if errors.Is(err, assets.ErrStylesheetNotFound) {
			return nil, fmt.Errorf("%w: theme %q", ErrStylesheetNotFound, spec.ID)
		}
		return nil, fmt.Errorf("loading theme %q: %w", spec.ID, err)
	}

	// Assemble the self-contained document: highlight CSS first so the
	// theme can override it
	htmlContent := pipeline.ComposeDocument(fragment, highlightCSS, themeCSS)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Resolve relative resource references against the source directory
	if input.SourceDir != "" {
		htmlContent, err = pipeline.RewriteRelativePaths(htmlContent, input.SourceDir)
		if err != nil {
			return nil, fmt.Errorf("rewriting relative paths: %w", err)
		}
	}

	res := &ConvertResult{
		HTML: []byte(htmlContent),
	}

	if input.HTMLOnly {
		return res, nil
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{Page: input.Page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
//
// This is a TRUST BOUNDARY for direct library users who build Input
// manually. CLI users have theme and page settings validated earlier at
// flag parsing time; both paths converge here.
func (c *Converter) validateInput(input Input) error {
	// Empty markdown is valid input and yields an empty-bodied
	// document, matching what a blank source file should produce.
	if err := input.Page.Validate(); err != nil {
		return err
	}
	return nil
}
