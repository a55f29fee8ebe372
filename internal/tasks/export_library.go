package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/bookcircle/internal/entities"
	"github.com/mrlokans/bookcircle/internal/exporters"
)

const ExportLibraryQueue = "export_library"

// ExportLibraryTask writes the reading list as it is when the task runs.
type ExportLibraryTask struct {
	RequestedBy string    `json:"requested_by"`
	RequestedAt time.Time `json:"requested_at"`
}

func (t ExportLibraryTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        ExportLibraryQueue,
		MaxAttempts: 3,
		Backoff:     10 * time.Second,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// LibrarySource yields the reading list to export.
type LibrarySource interface {
	UserBooks() []entities.UserBook
}

func ExportLibraryProcessor(source LibrarySource, exporter exporters.LibraryExporter) backlite.QueueProcessor[ExportLibraryTask] {
	return func(ctx context.Context, task ExportLibraryTask) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := exporter.Export(source.UserBooks())
		if err != nil {
			return fmt.Errorf("export library for %s: %w", task.RequestedBy, err)
		}

		log.Printf("[TASK] Exported %d library entries for %s to %v",
			result.BooksExported, task.RequestedBy, result.Files)
		return nil
	}
}

func NewExportLibraryQueue(source LibrarySource, exporter exporters.LibraryExporter) backlite.Queue {
	return backlite.NewQueue(ExportLibraryProcessor(source, exporter))
}

// EnqueueLibraryExport queues an export and returns its task ID.
func (c *Client) EnqueueLibraryExport(ctx context.Context, requestedBy string) (string, error) {
	ids, err := c.Add(ExportLibraryTask{
		RequestedBy: requestedBy,
		RequestedAt: time.Now(),
	}).Ctx(ctx).Save()
	if err != nil {
		return "", fmt.Errorf("enqueue library export: %w", err)
	}
	return ids[0], nil
}
