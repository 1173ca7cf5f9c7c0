package pressmark

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pressmark/pressmark/internal/assets"
	"github.com/pressmark/pressmark/internal/pipeline"
)

// fakePDFConverter records calls and returns canned PDF bytes without a
// browser.
type fakePDFConverter struct {
	called   bool
	lastHTML string
	pdf      []byte
	err      error
}

func (f *fakePDFConverter) ToPDF(_ context.Context, htmlContent string, _ *pdfOptions) ([]byte, error) {
	f.called = true
	f.lastHTML = htmlContent
	if f.err != nil {
		return nil, f.err
	}
	return f.pdf, nil
}

func (f *fakePDFConverter) Close() error { return nil }

var _ pdfConverter = (*fakePDFConverter)(nil)

// newTestConverter builds a Converter with the browser backend replaced.
func newTestConverter(fake *fakePDFConverter) *Converter {
	return &Converter{
		cfg:           converterConfig{timeout: defaultTimeout},
		themeLoader:   assets.NewEmbeddedLoader(),
		htmlConverter: pipeline.NewGoldmarkConverter(),
		pdfConverter:  fake,
	}
}

func TestConvertValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{
			name:    "unknown theme",
			input:   Input{Markdown: "# Hi", Theme: "no-such-theme"},
			wantErr: ErrUnknownTheme,
		},
		{
			name: "invalid page settings",
			input: Input{
				Markdown: "# Hi",
				Page:     &PageSettings{Size: "tabloid", Orientation: "portrait", Margin: 0.5},
			},
			wantErr: ErrInvalidPageSize,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv := newTestConverter(&fakePDFConverter{pdf: []byte("%PDF-fake")})
			_, err := conv.Convert(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Convert() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConvertHTMLOnly(t *testing.T) {
	t.Parallel()

	fake := &fakePDFConverter{pdf: []byte("%PDF-fake")}
	conv := newTestConverter(fake)

	result, err := conv.Convert(context.Background(), Input{
		Markdown: "# Title\n\nSome *emphasis*.",
		HTMLOnly: true,
	})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	if fake.called {
		t.Error("PDF backend was invoked in HTML-only mode")
	}
	if len(result.PDF) != 0 {
		t.Errorf("result.PDF = %d bytes, want empty", len(result.PDF))
	}

	html := string(result.HTML)
	if !strings.Contains(html, "<h1 id=\"title\">Title</h1>") {
		t.Errorf("HTML missing rendered heading:\n%s", html)
	}
	if !strings.Contains(html, "<em>emphasis</em>") {
		t.Errorf("HTML missing rendered emphasis:\n%s", html)
	}
	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Error("HTML is not a complete document")
	}
}

func TestConvertEmptyMarkdown(t *testing.T) {
	t.Parallel()

	fake := &fakePDFConverter{pdf: []byte("%PDF-fake")}
	conv := newTestConverter(fake)

	// A blank source converts to an empty-bodied document rather than
	// failing.
	result, err := conv.Convert(context.Background(), Input{Markdown: ""})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	html := string(result.HTML)
	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Error("HTML is not a complete document")
	}
	if !strings.Contains(html, "<body>") {
		t.Errorf("document missing body:\n%s", html)
	}
	if !fake.called {
		t.Error("PDF backend was not invoked")
	}
	if len(result.PDF) == 0 {
		t.Error("result.PDF is empty")
	}
}

func TestConvertDefaultTheme(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(&fakePDFConverter{pdf: []byte("%PDF-fake")})

	// Empty theme resolves to the default, which must succeed.
	result, err := conv.Convert(context.Background(), Input{
		Markdown: "hello",
		HTMLOnly: true,
	})
	if err != nil {
		t.Fatalf("Convert() with empty theme error: %v", err)
	}
	if !strings.Contains(string(result.HTML), "<style>") {
		t.Error("document missing inline stylesheet")
	}
}

func TestConvertCSSOrdering(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(&fakePDFConverter{})

	result, err := conv.Convert(context.Background(), Input{
		Markdown: "```go\npackage main\n```",
		Theme:    ThemeDracula,
		HTMLOnly: true,
	})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	html := string(result.HTML)

	// Highlight CSS comes before the theme stylesheet so theme rules win.
	highlightIdx := strings.Index(html, ".chroma")
	themeCSS, err := assets.LoadStylesheet("dracula")
	if err != nil {
		t.Fatalf("loading theme stylesheet: %v", err)
	}
	themeMarker := strings.SplitN(strings.TrimSpace(themeCSS), "\n", 2)[0]
	themeIdx := strings.Index(html, themeMarker)

	if highlightIdx < 0 {
		t.Fatal("document missing highlight CSS")
	}
	if themeIdx < 0 {
		t.Fatalf("document missing theme CSS (marker %q)", themeMarker)
	}
	if highlightIdx > themeIdx {
		t.Errorf("highlight CSS at %d appears after theme CSS at %d", highlightIdx, themeIdx)
	}

	// And the code block carries chroma classes for those rules.
	if !strings.Contains(html, `class="chroma"`) {
		t.Error("code block not rendered with chroma classes")
	}
}

func TestConvertProducesPDF(t *testing.T) {
	t.Parallel()

	fake := &fakePDFConverter{pdf: []byte("%PDF-1.7 fake")}
	conv := newTestConverter(fake)

	result, err := conv.Convert(context.Background(), Input{Markdown: "# Doc"})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	if !fake.called {
		t.Fatal("PDF backend was not invoked")
	}
	if string(result.PDF) != "%PDF-1.7 fake" {
		t.Errorf("result.PDF = %q", result.PDF)
	}
	if len(result.HTML) == 0 {
		t.Error("result.HTML is empty")
	}
	// The backend receives the same document the result carries.
	if fake.lastHTML != string(result.HTML) {
		t.Error("PDF backend received different HTML than result.HTML")
	}
}

func TestConvertPDFError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("render exploded")
	conv := newTestConverter(&fakePDFConverter{err: wantErr})

	_, err := conv.Convert(context.Background(), Input{Markdown: "# Doc"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Convert() error = %v, want wrapped %v", err, wantErr)
	}
}

func TestConvertCancelledContext(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(&fakePDFConverter{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := conv.Convert(ctx, Input{Markdown: "# Doc"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Convert() error = %v, want context.Canceled", err)
	}
}

func TestConvertRewritesRelativePaths(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(&fakePDFConverter{})
	dir := t.TempDir()

	result, err := conv.Convert(context.Background(), Input{
		Markdown:  "![diagram](images/diagram.png)",
		SourceDir: dir,
		HTMLOnly:  true,
	})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	html := string(result.HTML)
	if !strings.Contains(html, "file://") {
		t.Errorf("relative image path not rewritten to file:// URL:\n%s", html)
	}
	if strings.Contains(html, `src="images/diagram.png"`) {
		t.Error("relative image path left unrewritten")
	}
}
