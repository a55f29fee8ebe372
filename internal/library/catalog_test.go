package library

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/bookcircle/internal/entities"
	"github.com/mrlokans/bookcircle/internal/fixtures"
)

func bookIDs(books []entities.Book) []string {
	ids := make([]string, len(books))
	for i, b := range books {
		ids[i] = b.ID
	}
	return ids
}

func TestFilterBooks(t *testing.T) {
	catalog := fixtures.Books()

	tests := []struct {
		name     string
		filters  *entities.BookSearchFilters
		expected []string
	}{
		{"nil filters return catalog order", nil, []string{"1", "2", "3", "4", "5", "6"}},
		{"empty filters return catalog order", &entities.BookSearchFilters{}, []string{"1", "2", "3", "4", "5", "6"}},
		{"query matches title case-insensitively", &entities.BookSearchFilters{Query: "THE"}, []string{"1", "3", "5"}},
		{"query matches author", &entities.BookSearchFilters{Query: "herbert"}, []string{"2"}},
		{"genre is exact tag membership", &entities.BookSearchFilters{Genre: "Mystery"}, []string{"5"}},
		{"genre does not match substrings", &entities.BookSearchFilters{Genre: "Fiction"}, []string{"1"}},
		{"author substring", &entities.BookSearchFilters{Author: "clear"}, []string{"6"}},
		{"min rating is inclusive", &entities.BookSearchFilters{MinRating: 4.5}, []string{"2", "3", "6"}},
		{"filters are conjunctive", &entities.BookSearchFilters{Query: "the", MinRating: 4.3}, []string{"3"}},
		{"no match returns empty", &entities.BookSearchFilters{Query: "nonexistent"}, []string{}},
		{"sort by title", &entities.BookSearchFilters{SortBy: entities.SortByTitle}, []string{"6", "2", "4", "1", "3", "5"}},
		{"sort by author", &entities.BookSearchFilters{SortBy: entities.SortByAuthor}, []string{"5", "2", "6", "1", "4", "3"}},
		{"sort by rating", &entities.BookSearchFilters{SortBy: entities.SortByRating}, []string{"5", "1", "4", "3", "2", "6"}},
		{"sort by rating desc", &entities.BookSearchFilters{SortBy: entities.SortByRating, SortOrder: entities.SortDesc}, []string{"6", "2", "3", "4", "1", "5"}},
		{"sort by published date", &entities.BookSearchFilters{SortBy: entities.SortByPublishedDate}, []string{"2", "3", "4", "6", "5", "1"}},
		{"unknown sort keeps catalog order", &entities.BookSearchFilters{SortBy: "pages"}, []string{"1", "2", "3", "4", "5", "6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, bookIDs(FilterBooks(catalog, tt.filters)))
		})
	}
}

func TestFilterBooks_ResultIsSubset(t *testing.T) {
	catalog := fixtures.Books()
	known := make(map[string]bool)
	for _, b := range catalog {
		known[b.ID] = true
	}

	for _, genre := range []string{"Fiction", "Thriller", "Memoir", "Unknown"} {
		for _, b := range FilterBooks(catalog, &entities.BookSearchFilters{Genre: genre}) {
			assert.True(t, known[b.ID])
			assert.True(t, b.HasGenre(genre))
		}
	}
}

func TestFilterBooks_DescIsReverseOfAsc(t *testing.T) {
	catalog := fixtures.Books()
	fields := []entities.SortField{
		entities.SortByTitle,
		entities.SortByAuthor,
		entities.SortByRating,
		entities.SortByPublishedDate,
	}

	for _, field := range fields {
		t.Run(string(field), func(t *testing.T) {
			asc := bookIDs(FilterBooks(catalog, &entities.BookSearchFilters{SortBy: field, SortOrder: entities.SortAsc}))
			desc := bookIDs(FilterBooks(catalog, &entities.BookSearchFilters{SortBy: field, SortOrder: entities.SortDesc}))

			reversed := make([]string, len(asc))
			for i, id := range asc {
				reversed[len(asc)-1-i] = id
			}
			assert.Equal(t, reversed, desc)
		})
	}
}

func TestFilterBooks_StableForEqualKeys(t *testing.T) {
	books := []entities.Book{
		{ID: "a", AverageRating: 4.0},
		{ID: "b", AverageRating: 3.0},
		{ID: "c", AverageRating: 4.0},
		{ID: "d", AverageRating: 3.0},
	}

	result := FilterBooks(books, &entities.BookSearchFilters{SortBy: entities.SortByRating})
	assert.Equal(t, []string{"b", "d", "a", "c"}, bookIDs(result))
}

func TestFilterBooks_DoesNotModifyInput(t *testing.T) {
	catalog := fixtures.Books()
	FilterBooks(catalog, &entities.BookSearchFilters{SortBy: entities.SortByTitle, SortOrder: entities.SortDesc})
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, bookIDs(catalog))
}

func TestFilterBooks_MissingDateSortsFirst(t *testing.T) {
	books := fixtures.Books()
	books[0].PublishedDate = nil

	result := FilterBooks(books, &entities.BookSearchFilters{SortBy: entities.SortByPublishedDate})
	assert.Equal(t, "1", result[0].ID)
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		input string
		field entities.SortField
		order entities.SortOrder
	}{
		{"rating:desc", entities.SortByRating, entities.SortDesc},
		{"title:asc", entities.SortByTitle, entities.SortAsc},
		{"author", entities.SortByAuthor, entities.SortAsc},
		{"publishedDate:sideways", entities.SortByPublishedDate, entities.SortAsc},
		{"", "", entities.SortAsc},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			field, order := ParseSort(tt.input)
			assert.Equal(t, tt.field, field)
			assert.Equal(t, tt.order, order)
		})
	}
}

func TestValidSortField(t *testing.T) {
	assert.True(t, ValidSortField(entities.SortByTitle))
	assert.True(t, ValidSortField(""))
	assert.False(t, ValidSortField("pages"))
}
