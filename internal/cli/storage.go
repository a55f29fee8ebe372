package cli

import (
	"fmt"
	"io"
	"log"

	"github.com/mrlokans/bookcircle/internal/config"
)

// StorageCommand prints what is held in local storage, or wipes it.
type StorageCommand struct {
	DatabasePath string
	Clear        bool

	Out io.Writer
}

func NewStorageCommand() *StorageCommand {
	return &StorageCommand{}
}

func (cmd *StorageCommand) ParseFlags(args []string) error {
	fs := newFlagSet("storage", "List the keys held in local storage.",
		"storage -db ./bookcircle.db",
		"storage -clear",
	)
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.BoolVar(&cmd.Clear, "clear", false, "Remove every key (signs out and empties the library)")
	return fs.Parse(args)
}

func (cmd *StorageCommand) Run() error {
	a, err := openApp(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	out := output(cmd.Out)

	if cmd.Clear {
		if err := a.Storage.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Local storage cleared")
		return nil
	}

	keys, err := a.Storage.Keys()
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	if len(keys) == 0 {
		fmt.Fprintln(out, "Local storage is empty.")
		return nil
	}

	for _, key := range keys {
		value, _, err := a.Storage.GetItem(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-12s %d bytes\n", key, len(value))
	}
	return nil
}
