package pipeline

import "strings"

// Document assembly wraps the rendered fragment in a complete HTML5
// document. The highlight CSS is emitted before the theme CSS so theme
// rules win on conflicting selectors; that ordering is a contract, not
// an accident.
const (
	documentHead = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
`
	documentMiddle = `</style>
</head>
<body>
`
	documentFoot = `</body>
</html>
`
)

// ComposeDocument assembles one self-contained HTML document from a
// rendered body fragment, the syntax-highlight CSS, and the theme CSS.
// The fragment is included verbatim.
func ComposeDocument(fragment, highlightCSS, themeCSS string) string {
	var b strings.Builder
	b.Grow(len(documentHead) + len(highlightCSS) + len(themeCSS) + len(fragment) + 64)

	b.WriteString(documentHead)
	b.WriteString(sanitizeCSS(highlightCSS))
	b.WriteString("\n")
	b.WriteString(sanitizeCSS(themeCSS))
	b.WriteString("\n")
	b.WriteString(documentMiddle)
	b.WriteString(fragment)
	b.WriteString(documentFoot)

	return b.String()
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
// Prevents a stylesheet from closing the style tag prematurely.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
