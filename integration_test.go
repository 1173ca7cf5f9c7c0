//go:build integration

package pressmark

import (
	"bytes"
	"context"
	"testing"
	"time"
)

// Requires a Chromium install (or lets rod download one). Run with:
//
//	go test -tags integration ./...
func TestConvertEndToEnd(t *testing.T) {
	conv, err := NewConverter(WithTimeout(60 * time.Second))
	if err != nil {
		t.Fatalf("NewConverter() error: %v", err)
	}
	defer func() {
		if err := conv.Close(); err != nil {
			t.Errorf("Close() error: %v", err)
		}
	}()

	markdown := "# Integration\n\n" +
		"Some **bold** text and a table:\n\n" +
		"| a | b |\n|---|---|\n| 1 | 2 |\n\n" +
		"```go\nfunc main() {}\n```\n"

	for _, spec := range Themes() {
		t.Run(string(spec.ID), func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
			defer cancel()

			result, err := conv.Convert(ctx, Input{
				Markdown: markdown,
				Theme:    spec.ID,
			})
			if err != nil {
				t.Fatalf("Convert() error: %v", err)
			}

			if !bytes.HasPrefix(result.PDF, []byte("%PDF-")) {
				t.Errorf("output missing PDF magic bytes, got %q", result.PDF[:min(8, len(result.PDF))])
			}
			if len(result.PDF) < 1024 {
				t.Errorf("PDF suspiciously small: %d bytes", len(result.PDF))
			}
		})
	}
}

func TestConvertEndToEndPageSettings(t *testing.T) {
	conv, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error: %v", err)
	}
	defer func() { _ = conv.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	result, err := conv.Convert(ctx, Input{
		Markdown: "# Landscape A4",
		Page: &PageSettings{
			Size:        PageSizeA4,
			Orientation: OrientationLandscape,
			Margin:      1.0,
		},
	})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if !bytes.HasPrefix(result.PDF, []byte("%PDF-")) {
		t.Error("output missing PDF magic bytes")
	}
}
