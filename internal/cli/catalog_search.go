package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/mrlokans/bookcircle/internal/config"
	"github.com/mrlokans/bookcircle/internal/entities"
	"github.com/mrlokans/bookcircle/internal/library"
)

type CatalogSearchCommand struct {
	DatabasePath string
	Filters      entities.BookSearchFilters
	Sort         string
	JSON         bool

	Out io.Writer
}

func NewCatalogSearchCommand() *CatalogSearchCommand {
	return &CatalogSearchCommand{}
}

func (cmd *CatalogSearchCommand) ParseFlags(args []string) error {
	fs := newFlagSet("catalog-search", "Search the book catalog.",
		"catalog-search -genre Mystery",
		"catalog-search -query haig -sort rating:desc",
		"catalog-search -min-rating 4.5 -json",
	)

	var minRating float64
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.Filters.Query, "query", "", "Match title or author (case-insensitive)")
	fs.StringVar(&cmd.Filters.Genre, "genre", "", "Exact genre tag")
	fs.StringVar(&cmd.Filters.Author, "author", "", "Match author (case-insensitive)")
	fs.Float64Var(&minRating, "min-rating", 0, "Minimum average rating")
	fs.StringVar(&cmd.Sort, "sort", "", "Sort as field:order, field one of title, author, rating, publishedDate")
	fs.BoolVar(&cmd.JSON, "json", false, "Print JSON instead of a list")

	if err := fs.Parse(args); err != nil {
		return err
	}
	cmd.Filters.MinRating = minRating

	if cmd.Sort != "" {
		cmd.Filters.SortBy, cmd.Filters.SortOrder = library.ParseSort(cmd.Sort)
		if !library.ValidSortField(cmd.Filters.SortBy) {
			return fmt.Errorf("invalid sort field: %s", cmd.Filters.SortBy)
		}
	}
	return nil
}

func (cmd *CatalogSearchCommand) Run() error {
	a, err := openApp(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	books, err := a.Library.GetBooks(context.Background(), &cmd.Filters)
	if err != nil {
		return fmt.Errorf("failed to search catalog: %w", err)
	}

	out := output(cmd.Out)
	if cmd.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(books)
	}

	if len(books) == 0 {
		fmt.Fprintln(out, "No books match.")
		return nil
	}
	for i, book := range books {
		fmt.Fprintf(out, "%d. [%s] \"%s\" by %s (%.1f, %s)\n",
			i+1, book.ID, book.Title, book.Author, book.AverageRating, strings.Join(book.Genre, ", "))
	}
	return nil
}
