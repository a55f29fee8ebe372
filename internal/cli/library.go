package cli

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/mrlokans/bookcircle/internal/config"
	"github.com/mrlokans/bookcircle/internal/entities"
	"github.com/mrlokans/bookcircle/internal/exporters"
	"github.com/mrlokans/bookcircle/internal/library"
)

// LibraryCommand lists the reading list, optionally by status.
type LibraryCommand struct {
	DatabasePath string
	Status       string

	Out io.Writer
}

func NewLibraryCommand() *LibraryCommand {
	return &LibraryCommand{}
}

func (cmd *LibraryCommand) ParseFlags(args []string) error {
	fs := newFlagSet("library", "List the books in your library.",
		"library",
		"library -status reading",
	)
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.Status, "status", library.StatusAll, "all, to-read, reading or completed")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Status != library.StatusAll && !entities.ReadingStatus(cmd.Status).Valid() {
		return fmt.Errorf("invalid status: %s", cmd.Status)
	}
	return nil
}

func (cmd *LibraryCommand) Run() error {
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
	counts := a.Library.CountByStatus()
	fmt.Fprintf(out, "All: %d | Want to Read: %d | Currently Reading: %d | Completed: %d\n\n",
		counts.All, counts.ToRead, counts.Reading, counts.Completed)

	userBooks := a.Library.FilterByStatus(cmd.Status)
	if len(userBooks) == 0 {
		fmt.Fprintln(out, "No books in this list.")
		return nil
	}
	for _, ub := range userBooks {
		fmt.Fprintf(out, "%s  %-17s \"%s\" by %s%s\n",
			ub.ID, ub.Status.Label(), ub.Book.Title, ub.Book.Author, progressSuffix(ub))
	}
	return nil
}

func progressSuffix(ub entities.UserBook) string {
	if ub.CurrentPage == nil || ub.Book.PageCount == 0 {
		return ""
	}
	return fmt.Sprintf(" (page %d of %d)", *ub.CurrentPage, ub.Book.PageCount)
}

// LibraryAddCommand adds a catalog book to the library or changes its
// status if it is already there.
type LibraryAddCommand struct {
	DatabasePath string
	BookID       string
	Status       string

	Out io.Writer
}

func NewLibraryAddCommand() *LibraryAddCommand {
	return &LibraryAddCommand{}
}

func (cmd *LibraryAddCommand) ParseFlags(args []string) error {
	fs := newFlagSet("library-add", "Add a book to your library.",
		"library-add -book 2 -status reading",
	)
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.BookID, "book", "", "Catalog book ID (required)")
	fs.StringVar(&cmd.Status, "status", string(entities.ReadingStatusToRead), "to-read, reading or completed")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.BookID == "" {
		fs.Usage()
		return fmt.Errorf("book is required")
	}
	return nil
}

func (cmd *LibraryAddCommand) Run() error {
	a, err := openApp(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	ub, err := a.Library.AddBookToLibrary(context.Background(), cmd.BookID, entities.ReadingStatus(cmd.Status))
	if err != nil {
		return err
	}

	fmt.Fprintf(output(cmd.Out), "Added \"%s\" to %s (%s)\n", ub.Book.Title, ub.Status.Label(), ub.ID)
	return nil
}

// LibraryExportCommand writes the library as JSON and Markdown.
type LibraryExportCommand struct {
	DatabasePath string
	Dir          string

	Out io.Writer
}

func NewLibraryExportCommand() *LibraryExportCommand {
	return &LibraryExportCommand{}
}

func (cmd *LibraryExportCommand) ParseFlags(args []string) error {
	fs := newFlagSet("library-export", "Export your library to JSON and Markdown files.",
		"library-export -dir ./exports",
	)
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.Dir, "dir", config.DefaultExportDir, "Output directory")

	return fs.Parse(args)
}

func (cmd *LibraryExportCommand) Run() error {
	a, err := openApp(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	result, err := exporters.NewFileExporter(cmd.Dir).Export(a.Library.UserBooks())
	if err != nil {
		return fmt.Errorf("failed to export library: %w", err)
	}

	out := output(cmd.Out)
	fmt.Fprintf(out, "Exported %d books\n", result.BooksExported)
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	return nil
}
