package library

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mrlokans/bookcircle/internal/entities"
)

// FilterBooks applies filters to books and returns a new slice; books is
// not modified. All supplied predicates must hold. Sorting is stable in
// ascending order, and descending order is the exact reverse of it.
func FilterBooks(books []entities.Book, filters *entities.BookSearchFilters) []entities.Book {
	result := make([]entities.Book, 0, len(books))
	if filters == nil {
		return append(result, books...)
	}

	query := strings.ToLower(filters.Query)
	author := strings.ToLower(filters.Author)

	for _, book := range books {
		if query != "" &&
			!strings.Contains(strings.ToLower(book.Title), query) &&
			!strings.Contains(strings.ToLower(book.Author), query) {
			continue
		}
		if filters.Genre != "" && !book.HasGenre(filters.Genre) {
			continue
		}
		if author != "" && !strings.Contains(strings.ToLower(book.Author), author) {
			continue
		}
		if filters.MinRating > 0 && book.AverageRating < filters.MinRating {
			continue
		}
		result = append(result, book)
	}

	if filters.SortBy != "" {
		sortBooks(result, filters.SortBy)
		if filters.SortOrder == entities.SortDesc {
			slices.Reverse(result)
		}
	}
	return result
}

func sortBooks(books []entities.Book, field entities.SortField) {
	col := collate.New(language.English, collate.IgnoreCase)

	var cmp func(a, b entities.Book) int
	switch field {
	case entities.SortByTitle:
		cmp = func(a, b entities.Book) int { return col.CompareString(a.Title, b.Title) }
	case entities.SortByAuthor:
		cmp = func(a, b entities.Book) int { return col.CompareString(a.Author, b.Author) }
	case entities.SortByRating:
		cmp = func(a, b entities.Book) int {
			switch {
			case a.AverageRating < b.AverageRating:
				return -1
			case a.AverageRating > b.AverageRating:
				return 1
			}
			return 0
		}
	case entities.SortByPublishedDate:
		cmp = func(a, b entities.Book) int {
			return publishedAt(a).Compare(publishedAt(b))
		}
	default:
		return
	}
	slices.SortStableFunc(books, cmp)
}

// publishedAt treats a missing date as the zero time so undated books sort first.
func publishedAt(b entities.Book) time.Time {
	if b.PublishedDate == nil {
		return time.Time{}
	}
	return *b.PublishedDate
}

// ValidSortField reports whether field is one of the supported sort keys.
func ValidSortField(field entities.SortField) bool {
	switch field {
	case "", entities.SortByTitle, entities.SortByAuthor, entities.SortByRating, entities.SortByPublishedDate:
		return true
	}
	return false
}

// ParseSort splits a "field:order" pair such as "rating:desc".
// A missing order defaults to ascending.
func ParseSort(s string) (entities.SortField, entities.SortOrder) {
	field, order, _ := strings.Cut(s, ":")
	if order != string(entities.SortDesc) {
		order = string(entities.SortAsc)
	}
	return entities.SortField(field), entities.SortOrder(order)
}
