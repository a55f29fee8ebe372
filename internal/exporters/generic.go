package exporters

import "github.com/mrlokans/bookcircle/internal/entities"

// LibraryExporter writes a snapshot of the reading list somewhere durable.
type LibraryExporter interface {
	Export(userBooks []entities.UserBook) (ExportResult, error)
}

type ExportResult struct {
	BooksExported int      `json:"books_exported"`
	Files         []string `json:"files"`
}
