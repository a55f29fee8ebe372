package cli

import (
	"fmt"
	"io"
	"log"

	"github.com/mrlokans/bookcircle/internal/auth"
	"github.com/mrlokans/bookcircle/internal/config"
	"github.com/mrlokans/bookcircle/internal/scheduler"
)

// DemoResetCommand restores the demo data once, the same way the
// scheduled reset does.
type DemoResetCommand struct {
	DatabasePath string

	Out io.Writer
}

func NewDemoResetCommand() *DemoResetCommand {
	return &DemoResetCommand{}
}

func (cmd *DemoResetCommand) ParseFlags(args []string) error {
	fs := newFlagSet("demo-reset", "Clear the library and restore the seed reviews.")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	return fs.Parse(args)
}

func (cmd *DemoResetCommand) Run() error {
	a, err := openApp(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	removed := len(a.Library.UserBooks())
	if err := scheduler.NewDemoResetScheduler(a.Reviews, a.Library, "").RunNow(); err != nil {
		return err
	}

	fmt.Fprintf(output(cmd.Out), "Demo data reset (%d library entries removed)\n", removed)
	return nil
}

// GenerateSecretCommand prints a value suitable for AUTH_CSRF_SECRET.
type GenerateSecretCommand struct {
	Out io.Writer
}

func NewGenerateSecretCommand() *GenerateSecretCommand {
	return &GenerateSecretCommand{}
}

func (cmd *GenerateSecretCommand) ParseFlags(args []string) error {
	fs := newFlagSet("gen-secret", "Print a random secret for AUTH_CSRF_SECRET.")
	return fs.Parse(args)
}

func (cmd *GenerateSecretCommand) Run() error {
	secret, err := auth.GenerateSecret()
	if err != nil {
		return fmt.Errorf("failed to generate secret: %w", err)
	}
	fmt.Fprintln(output(cmd.Out), secret)
	return nil
}
