package pipeline

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	"go.abhg.dev/goldmark/toc"
)

// tocPlaceholder is the literal paragraph replaced with a generated
// table of contents.
const tocPlaceholder = "[TOC]"

// tocTransformer replaces top-level [TOC] paragraphs with a linked
// list of the document's headings. It relies on the auto heading ID
// parser having assigned anchors, so it must run as a transformer
// rather than during block parsing.
type tocTransformer struct{}

// Transform implements parser.ASTTransformer.
func (t *tocTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	var placeholders []ast.Node
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		if isTOCPlaceholder(child, reader.Source()) {
			placeholders = append(placeholders, child)
		}
	}
	if len(placeholders) == 0 {
		return
	}

	tree, err := toc.Inspect(doc, reader.Source())
	if err != nil {
		return
	}
	for _, ph := range placeholders {
		// RenderList builds a fresh node per call; a node can only sit
		// in one place in the tree.
		list := toc.RenderList(tree)
		if list == nil {
			doc.RemoveChild(doc, ph)
			continue
		}
		list.SetAttributeString("class", []byte("toc"))
		doc.ReplaceChild(doc, ph, list)
	}
}

func isTOCPlaceholder(n ast.Node, source []byte) bool {
	para, ok := n.(*ast.Paragraph)
	if !ok || para.Lines().Len() != 1 {
		return false
	}
	seg := para.Lines().At(0)
	line := seg.Value(source)
	return strings.TrimSpace(string(line)) == tocPlaceholder
}

type tocExtension struct{}

// TOCPlaceholder returns an extension expanding [TOC] paragraphs into
// a table of contents.
func TOCPlaceholder() goldmark.Extender { return &tocExtension{} }

// Extend implements goldmark.Extender.
func (e *tocExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&tocTransformer{}, 200),
	))
}

var _ parser.ASTTransformer = (*tocTransformer)(nil)
