// Package pressmark converts Markdown documents to themed PDF files
// using headless Chrome.
//
// # Quick Start
//
// Create a converter, convert markdown, and close when done:
//
//	conv, err := pressmark.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, pressmark.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    Theme:    pressmark.ThemeDracula,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.pdf", result.PDF, 0644)
//
// The result contains both the PDF bytes (result.PDF) and the assembled
// HTML (result.HTML) for debugging. Use Input.HTMLOnly to skip PDF
// generation.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Syntax-highlight CSS generation via Chroma (per-theme palette)
//  2. Markdown to HTML conversion via Goldmark (GFM, footnotes,
//     definition lists, typographer, attribute lists, admonitions,
//     abbreviations, [TOC] expansion, highlighting)
//  3. Document assembly (highlight CSS, then theme CSS, then body)
//  4. Relative resource rewriting against the source directory
//  5. PDF rendering via headless Chrome (go-rod)
//
// # Themes
//
// Five built-in themes bundle a stylesheet with a matching syntax
// palette: professional-dark, dracula, minimal-light, nord, and
// github-dark. Stylesheets are embedded; a custom themes directory may
// override them via WithThemeLoader.
//
// # Parallel Processing
//
// For batch conversion, use ConverterPool to manage multiple browser
// instances:
//
//	pool := pressmark.NewConverterPool(4)
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Release(conv)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library
// automatically downloads a managed Chromium instance on first run
// (~/.cache/rod/browser/). Set ROD_BROWSER_BIN to use a pre-installed
// browser; the sandbox is disabled automatically in CI containers.
package pressmark
