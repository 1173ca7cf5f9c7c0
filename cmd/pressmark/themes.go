package main

import (
	"fmt"

	pressmark "github.com/pressmark/pressmark"
)

// runThemes lists the available themes with descriptions.
func runThemes(env *Environment) {
	specs := pressmark.Themes()

	width := 0
	for _, spec := range specs {
		if len(spec.ID) > width {
			width = len(spec.ID)
		}
	}

	fmt.Fprintln(env.Stdout, "Available themes:")
	fmt.Fprintln(env.Stdout)
	for _, spec := range specs {
		fmt.Fprintf(env.Stdout, "  %-*s  %s\n", width, spec.ID, spec.Description)
	}
	fmt.Fprintln(env.Stdout)
	fmt.Fprintln(env.Stdout, "Use --theme <name> with the convert command to select a theme.")
}
