package exporters

import (
	"fmt"
	"strings"
	"time"

	"github.com/mrlokans/bookcircle/internal/entities"
)

const dateLayout = "2006-01-02"

// GenerateMarkdown renders the library grouped by status, in tab order.
func GenerateMarkdown(userBooks []entities.UserBook, generatedAt time.Time) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: reading_list\n")
	fmt.Fprintf(&builder, "created_at: %s\n", generatedAt.Format(dateLayout))
	fmt.Fprintf(&builder, "books: %d\n", len(userBooks))
	fmt.Fprintf(&builder, "---\n\n")
	fmt.Fprintf(&builder, "# My Library\n\n")

	for _, status := range entities.ReadingStatuses {
		var section []entities.UserBook
		for _, ub := range userBooks {
			if ub.Status == status {
				section = append(section, ub)
			}
		}
		if len(section) == 0 {
			continue
		}

		fmt.Fprintf(&builder, "## %s\n\n", status.Label())
		for _, ub := range section {
			writeEntry(&builder, ub)
		}
	}

	return builder.String()
}

func writeEntry(builder *strings.Builder, ub entities.UserBook) {
	fmt.Fprintf(builder, "### %s\n\n", ub.Book.Title)
	fmt.Fprintf(builder, "- Author: %s\n", ub.Book.Author)
	fmt.Fprintf(builder, "- Added: %s\n", ub.DateAdded.Format(dateLayout))
	if ub.DateStarted != nil {
		fmt.Fprintf(builder, "- Started: %s\n", ub.DateStarted.Format(dateLayout))
	}
	if ub.DateFinished != nil {
		fmt.Fprintf(builder, "- Finished: %s\n", ub.DateFinished.Format(dateLayout))
	}
	if ub.CurrentPage != nil {
		if ub.Book.PageCount > 0 {
			fmt.Fprintf(builder, "- Progress: page %d of %d\n", *ub.CurrentPage, ub.Book.PageCount)
		} else {
			fmt.Fprintf(builder, "- Progress: page %d\n", *ub.CurrentPage)
		}
	}
	builder.WriteString("\n")
	if ub.Notes != "" {
		fmt.Fprintf(builder, "> %s\n\n", strings.ReplaceAll(ub.Notes, "\n", "\n> "))
	}
}
