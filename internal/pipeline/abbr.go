package pipeline

import (
	"bytes"
	"regexp"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// An Abbreviation is an inline span produced from a `*[LABEL]: expansion`
// definition. It renders as an <abbr> element carrying the expansion as
// its title.
type Abbreviation struct {
	ast.BaseInline

	// Title is the expansion text shown on hover.
	Title []byte
}

// KindAbbreviation is the node kind of Abbreviation.
var KindAbbreviation = ast.NewNodeKind("Abbreviation")

// Kind implements ast.Node.
func (n *Abbreviation) Kind() ast.NodeKind { return KindAbbreviation }

// Dump implements ast.Node.
func (n *Abbreviation) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Title": string(n.Title),
	}, nil)
}

// abbrDefinition matches a single `*[LABEL]: expansion` line.
var abbrDefinition = regexp.MustCompile(`^\*\[([^\]]+)\]:[ \t]*(.*)$`)

// abbrTransformer collects abbreviation definition paragraphs, removes
// them from the document, and wraps every whole-word occurrence of a
// defined label in an Abbreviation node. Text inside code spans and
// code blocks is left alone.
type abbrTransformer struct{}

// Transform implements parser.ASTTransformer.
func (t *abbrTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	defs := t.collectDefinitions(doc, reader.Source())
	if len(defs) == 0 {
		return
	}

	// Longest label first so overlapping labels pick the longer match.
	labels := make([]string, 0, len(defs))
	for label := range defs {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if len(labels[i]) != len(labels[j]) {
			return len(labels[i]) > len(labels[j])
		}
		return labels[i] < labels[j]
	})

	var texts []*ast.Text
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindCodeSpan, ast.KindCodeBlock, ast.KindFencedCodeBlock:
			return ast.WalkSkipChildren, nil
		case ast.KindText:
			texts = append(texts, n.(*ast.Text))
		}
		return ast.WalkContinue, nil
	})
	for _, txt := range texts {
		t.splitText(txt, reader.Source(), labels, defs)
	}
}

// collectDefinitions removes paragraphs made entirely of definition
// lines and returns the collected label to expansion mapping.
func (t *abbrTransformer) collectDefinitions(doc *ast.Document, source []byte) map[string]string {
	var defs map[string]string
	var remove []ast.Node
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		para, ok := child.(*ast.Paragraph)
		if !ok || para.Lines().Len() == 0 {
			continue
		}
		matched := make([][2]string, 0, para.Lines().Len())
		for i := 0; i < para.Lines().Len(); i++ {
			seg := para.Lines().At(i)
			line := bytes.TrimRight(seg.Value(source), "\r\n")
			m := abbrDefinition.FindSubmatch(line)
			if m == nil {
				matched = nil
				break
			}
			matched = append(matched, [2]string{
				string(m[1]),
				string(bytes.TrimSpace(m[2])),
			})
		}
		if matched == nil {
			continue
		}
		if defs == nil {
			defs = make(map[string]string)
		}
		for _, d := range matched {
			defs[d[0]] = d[1]
		}
		remove = append(remove, para)
	}
	for _, n := range remove {
		doc.RemoveChild(doc, n)
	}
	return defs
}

// splitText wraps the first defined label found in node, then recurses
// into the remaining tail so later occurrences are wrapped too.
func (t *abbrTransformer) splitText(node *ast.Text, source []byte, labels []string, defs map[string]string) {
	parent := node.Parent()
	if parent == nil {
		return
	}
	seg := node.Segment
	start, label := findAbbreviation(seg.Value(source), labels)
	if start < 0 {
		return
	}

	abbr := &Abbreviation{Title: []byte(defs[label])}
	abbr.AppendChild(abbr, ast.NewTextSegment(
		text.NewSegment(seg.Start+start, seg.Start+start+len(label)),
	))

	if start > 0 {
		before := ast.NewTextSegment(text.NewSegment(seg.Start, seg.Start+start))
		parent.InsertBefore(parent, node, before)
	}
	parent.InsertBefore(parent, node, abbr)

	// The tail keeps the original node's line break flags so splitting
	// never swallows a newline.
	rest := seg.Start + start + len(label)
	after := ast.NewTextSegment(text.NewSegment(rest, seg.Stop))
	after.SetSoftLineBreak(node.SoftLineBreak())
	after.SetHardLineBreak(node.HardLineBreak())
	parent.ReplaceChild(parent, node, after)
	if rest < seg.Stop {
		t.splitText(after, source, labels, defs)
	}
}

// findAbbreviation returns the earliest whole-word occurrence of any
// label in value, or -1 when none occurs.
func findAbbreviation(value []byte, labels []string) (int, string) {
	best, bestLabel := -1, ""
	for _, label := range labels {
		offset := 0
		for {
			i := bytes.Index(value[offset:], []byte(label))
			if i < 0 {
				break
			}
			pos := offset + i
			if isWordBounded(value, pos, len(label)) {
				if best < 0 || pos < best {
					best, bestLabel = pos, label
				}
				break
			}
			offset = pos + 1
		}
	}
	return best, bestLabel
}

func isWordBounded(value []byte, pos, length int) bool {
	if pos > 0 {
		r, _ := utf8.DecodeLastRune(value[:pos])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end := pos + length; end < len(value) {
		r, _ := utf8.DecodeRune(value[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

type abbrHTMLRenderer struct{}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *abbrHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindAbbreviation, r.renderAbbreviation)
}

func (r *abbrHTMLRenderer) renderAbbreviation(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*Abbreviation)
	if entering {
		_, _ = w.WriteString(`<abbr title="`)
		_, _ = w.Write(util.EscapeHTML(n.Title))
		_, _ = w.WriteString(`">`)
	} else {
		_, _ = w.WriteString("</abbr>")
	}
	return ast.WalkContinue, nil
}

type abbrExtension struct{}

// Abbreviations returns an extension enabling `*[LABEL]: expansion`
// definitions rendered as <abbr> elements.
func Abbreviations() goldmark.Extender { return &abbrExtension{} }

// Extend implements goldmark.Extender.
func (e *abbrExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&abbrTransformer{}, 300),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&abbrHTMLRenderer{}, 500),
	))
}

var _ parser.ASTTransformer = (*abbrTransformer)(nil)
var _ renderer.NodeRenderer = (*abbrHTMLRenderer)(nil)
