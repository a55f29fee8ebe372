package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/bookcircle/internal/cli"
	"github.com/mrlokans/bookcircle/internal/config"
	"github.com/mrlokans/bookcircle/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// command is implemented by every CLI subcommand.
type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	name := os.Args[1]
	args := os.Args[2:]

	var cmd command
	switch name {
	case "catalog-search":
		cmd = cli.NewCatalogSearchCommand()
	case "library":
		cmd = cli.NewLibraryCommand()
	case "library-add":
		cmd = cli.NewLibraryAddCommand()
	case "library-export":
		cmd = cli.NewLibraryExportCommand()
	case "storage":
		cmd = cli.NewStorageCommand()
	case "demo-reset":
		cmd = cli.NewDemoResetCommand()
	case "gen-secret":
		cmd = cli.NewGenerateSecretCommand()
	case "version":
		fmt.Printf("bookcircle %s (%s)\n", Version, Commit)
		return
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve            Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  catalog-search   Search the book catalog\n")
	fmt.Fprintf(os.Stderr, "  library          List the books in your library\n")
	fmt.Fprintf(os.Stderr, "  library-add      Add a book to your library\n")
	fmt.Fprintf(os.Stderr, "  library-export   Export your library to JSON and Markdown\n")
	fmt.Fprintf(os.Stderr, "  storage          List or clear the keys held in local storage\n")
	fmt.Fprintf(os.Stderr, "  demo-reset       Clear the library and restore the seed reviews\n")
	fmt.Fprintf(os.Stderr, "  gen-secret       Print a random CSRF secret\n")
	fmt.Fprintf(os.Stderr, "  version          Print the version\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
