// Package cli holds the command line tools that work on the local storage
// database directly, without a running server.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/bookcircle/internal/app"
	"github.com/mrlokans/bookcircle/internal/config"
)

// openApp builds the stores over dbPath with simulated latency disabled.
func openApp(dbPath string) (*app.App, error) {
	cfg := config.NewConfig()
	cfg.Database.Path = dbPath
	cfg.Latency.Scale = 0

	a, err := app.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", dbPath, err)
	}
	return a, nil
}

func newFlagSet(name, description string, examples ...string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s [options]\n\n", os.Args[0], name)
		fmt.Fprintf(os.Stderr, "%s\n\n", description)
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		if len(examples) > 0 {
			fmt.Fprintf(os.Stderr, "\nExamples:\n")
			for _, ex := range examples {
				fmt.Fprintf(os.Stderr, "  %s %s\n", os.Args[0], ex)
			}
		}
	}
	return fs
}

func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
