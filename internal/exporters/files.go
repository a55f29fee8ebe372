package exporters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mrlokans/bookcircle/internal/entities"
)

// FileExporter writes library-<timestamp>.json and library-<timestamp>.md
// into Dir, creating it if needed.
type FileExporter struct {
	Dir string
	now func() time.Time
}

func NewFileExporter(dir string) *FileExporter {
	return &FileExporter{Dir: dir, now: time.Now}
}

func (exporter *FileExporter) Export(userBooks []entities.UserBook) (ExportResult, error) {
	if err := os.MkdirAll(exporter.Dir, 0755); err != nil {
		return ExportResult{}, fmt.Errorf("failed to create export directory: %w", err)
	}

	now := exporter.now()
	base := filepath.Join(exporter.Dir, "library-"+now.Format("20060102-150405"))

	data, err := json.MarshalIndent(userBooks, "", "  ")
	if err != nil {
		return ExportResult{}, fmt.Errorf("encode library: %w", err)
	}
	jsonPath := base + ".json"
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return ExportResult{}, err
	}

	mdPath := base + ".md"
	if err := os.WriteFile(mdPath, []byte(GenerateMarkdown(userBooks, now)), 0644); err != nil {
		return ExportResult{}, err
	}

	return ExportResult{
		BooksExported: len(userBooks),
		Files:         []string{jsonPath, mdPath},
	}, nil
}
