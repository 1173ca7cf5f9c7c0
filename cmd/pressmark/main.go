// Command pressmark converts Markdown files to styled PDFs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env := &Environment{Stdout: os.Stdout, Stderr: os.Stderr}
	os.Exit(run(ctx, os.Args[1:], env))
}

// run dispatches to a subcommand and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return 1
	}

	switch args[0] {
	case "convert":
		if err := runConvert(ctx, args[1:], env); err != nil {
			fmt.Fprintln(env.Stderr, "Error:", err)
			return 1
		}
		return 0
	case "themes":
		runThemes(env)
		return 0
	case "version":
		fmt.Fprintf(env.Stdout, "pressmark %s\n", Version)
		return 0
	case "help":
		runHelp(args[1:], env)
		return 0
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return 1
	}
}
