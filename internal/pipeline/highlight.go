package pipeline

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrHighlightCSS indicates highlight stylesheet generation failed.
var ErrHighlightCSS = errors.New("highlight CSS generation failed")

// FallbackPalette is used when a palette name is not registered with
// chroma. A bad palette degrades the code colors, never the document.
const FallbackPalette = "monokai"

// HighlightCSS generates the CSS rules for syntax-highlighted code
// blocks using the named chroma palette. Unknown palette names fall
// back to FallbackPalette.
//
// The rules use class selectors (matching the class-based formatter in
// the Markdown converter) so they can be concatenated with a theme
// stylesheet.
func HighlightCSS(palette string) (string, error) {
	style := lookupStyle(palette)

	formatter := chromahtml.New(chromahtml.WithClasses(true))

	var buf bytes.Buffer
	if err := formatter.WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlightCSS, err)
	}

	return buf.String(), nil
}

// lookupStyle resolves a palette name, falling back to FallbackPalette
// for unregistered names. styles.Get returns styles.Fallback rather
// than nil for unknown names, so the check compares against it.
func lookupStyle(palette string) *chroma.Style {
	style := styles.Get(palette)
	if style == styles.Fallback {
		style = styles.Get(FallbackPalette)
	}
	return style
}
