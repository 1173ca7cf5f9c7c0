package pipeline

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// An Admonition is a callout block: a `!!! kind "Title"` marker line
// followed by a body indented by four spaces. It renders as a
// div.admonition so themes can style notes, warnings and the like.
type Admonition struct {
	ast.BaseBlock

	// Name is the admonition kind, e.g. "note" or "warning".
	Name []byte
	// Title is the display title. Empty means suppressed.
	Title []byte
}

// KindAdmonition is the node kind of Admonition.
var KindAdmonition = ast.NewNodeKind("Admonition")

// Kind implements ast.Node.
func (n *Admonition) Kind() ast.NodeKind { return KindAdmonition }

// Dump implements ast.Node.
func (n *Admonition) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Name":  string(n.Name),
		"Title": string(n.Title),
	}, nil)
}

// admonitionIndent is the body indent width required after the marker
// line.
const admonitionIndent = 4

// admonitionMarker matches `!!! kind` with an optional quoted title.
// A quoted empty title suppresses the title line entirely.
var admonitionMarker = regexp.MustCompile(`^!!![ \t]+([\p{L}\p{N}_-]+)(?:[ \t]+"([^"]*)")?\s*$`)

type admonitionParser struct{}

func (p *admonitionParser) Trigger() []byte { return []byte{'!'} }

func (p *admonitionParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()
	m := admonitionMarker.FindSubmatch(line)
	if m == nil {
		return nil, parser.NoChildren
	}
	node := &Admonition{Name: append([]byte(nil), m[1]...)}
	if m[2] == nil {
		node.Title = defaultAdmonitionTitle(node.Name)
	} else {
		node.Title = append([]byte(nil), m[2]...)
	}
	reader.Advance(segment.Len() - 1)
	return node, parser.HasChildren
}

func (p *admonitionParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	line, _ := reader.PeekLine()
	if util.IsBlank(line) {
		return parser.Continue | parser.HasChildren
	}
	pos, padding := util.IndentPosition(line, reader.LineOffset(), admonitionIndent)
	if pos < 0 {
		return parser.Close
	}
	reader.AdvanceAndSetPadding(pos, padding)
	return parser.Continue | parser.HasChildren
}

func (p *admonitionParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (p *admonitionParser) CanInterruptParagraph() bool { return true }

func (p *admonitionParser) CanAcceptIndentedLine() bool { return false }

// defaultAdmonitionTitle capitalizes the kind name, so `!!! note`
// gets the title "Note".
func defaultAdmonitionTitle(name []byte) []byte {
	r, size := utf8.DecodeRune(name)
	return append([]byte(string(unicode.ToUpper(r))), name[size:]...)
}

type admonitionHTMLRenderer struct{}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *admonitionHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindAdmonition, r.renderAdmonition)
}

func (r *admonitionHTMLRenderer) renderAdmonition(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*Admonition)
	if entering {
		_, _ = w.WriteString(`<div class="admonition `)
		_, _ = w.Write(util.EscapeHTML(n.Name))
		_, _ = w.WriteString("\">\n")
		if len(n.Title) > 0 {
			_, _ = w.WriteString(`<p class="admonition-title">`)
			_, _ = w.Write(util.EscapeHTML(n.Title))
			_, _ = w.WriteString("</p>\n")
		}
	} else {
		_, _ = w.WriteString("</div>\n")
	}
	return ast.WalkContinue, nil
}

type admonitionExtension struct{}

// Admonitions returns an extension enabling callout blocks.
func Admonitions() goldmark.Extender { return &admonitionExtension{} }

// Extend implements goldmark.Extender.
func (e *admonitionExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithBlockParsers(
		util.Prioritized(&admonitionParser{}, 799),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&admonitionHTMLRenderer{}, 500),
	))
}

var _ parser.BlockParser = (*admonitionParser)(nil)
var _ renderer.NodeRenderer = (*admonitionHTMLRenderer)(nil)
