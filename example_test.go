package pressmark_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/pressmark/pressmark"
)

// Example demonstrates basic markdown to HTML conversion.
// For PDF output, set HTMLOnly to false (requires Chrome).
func Example() {
	conv, err := pressmark.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), pressmark.Input{
		Markdown: "# Hello World\n\nThis is a test.",
		HTMLOnly: true, // Skip PDF generation for this example
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(string(result.HTML), "<h1") {
		fmt.Println("HTML generated successfully")
	}
	// Output: HTML generated successfully
}

// Example_theme demonstrates selecting a visual theme.
func Example_theme() {
	conv, err := pressmark.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), pressmark.Input{
		Markdown: "# Styled Document",
		Theme:    pressmark.ThemeNord,
		HTMLOnly: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(string(result.HTML), "<style>") {
		fmt.Println("theme applied")
	}
	// Output: theme applied
}

// Example_pageSettings demonstrates custom page dimensions.
func Example_pageSettings() {
	conv, err := pressmark.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), pressmark.Input{
		Markdown: "# Landscape Report",
		Page: &pressmark.PageSettings{
			Size:        pressmark.PageSizeA4,
			Orientation: pressmark.OrientationLandscape,
			Margin:      1.0,
		},
		HTMLOnly: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if len(result.HTML) > 0 {
		fmt.Println("document generated")
	}
	// Output: document generated
}

// ExampleThemes lists the available themes.
func ExampleThemes() {
	for _, spec := range pressmark.Themes() {
		fmt.Println(spec.ID)
	}
	// Output:
	// professional-dark
	// dracula
	// minimal-light
	// nord
	// github-dark
}
