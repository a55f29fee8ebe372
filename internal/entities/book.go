package entities

import (
	"time"
)

type ReadingStatus string

const (
	ReadingStatusToRead    ReadingStatus = "to-read"
	ReadingStatusReading   ReadingStatus = "reading"
	ReadingStatusCompleted ReadingStatus = "completed"
)

// ReadingStatuses lists every status in the order the library tabs show them.
var ReadingStatuses = []ReadingStatus{
	ReadingStatusToRead,
	ReadingStatusReading,
	ReadingStatusCompleted,
}

func (s ReadingStatus) Valid() bool {
	switch s {
	case ReadingStatusToRead, ReadingStatusReading, ReadingStatusCompleted:
		return true
	}
	return false
}

// Label returns the human readable name used in notifications.
func (s ReadingStatus) Label() string {
	switch s {
	case ReadingStatusToRead:
		return "Want to Read"
	case ReadingStatusReading:
		return "Currently Reading"
	case ReadingStatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

type Book struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	Description   string     `json:"description"`
	CoverURL      string     `json:"coverUrl"`
	ISBN          string     `json:"isbn,omitempty"`
	PublishedDate *time.Time `json:"publishedDate,omitempty"`
	PageCount     int        `json:"pageCount,omitempty"`
	Genre         []string   `json:"genre"`
	AverageRating float64    `json:"averageRating"`
	RatingsCount  int        `json:"ratingsCount"`
	Language      string     `json:"language"`
}

// HasGenre reports whether the book is tagged with exactly the given genre.
func (b Book) HasGenre(genre string) bool {
	for _, g := range b.Genre {
		if g == genre {
			return true
		}
	}
	return false
}

// UserBook links a user to a book with a reading status.
// Book is a copy taken when the entry was written and is never refreshed.
type UserBook struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	BookID       string        `json:"bookId"`
	Book         Book          `json:"book"`
	Status       ReadingStatus `json:"status"`
	DateAdded    time.Time     `json:"dateAdded"`
	DateStarted  *time.Time    `json:"dateStarted,omitempty"`
	DateFinished *time.Time    `json:"dateFinished,omitempty"`
	CurrentPage  *int          `json:"currentPage,omitempty"`
	Notes        string        `json:"notes,omitempty"`
}

type SortField string

const (
	SortByTitle         SortField = "title"
	SortByAuthor        SortField = "author"
	SortByRating        SortField = "rating"
	SortByPublishedDate SortField = "publishedDate"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// BookSearchFilters narrows a catalog query. Zero values mean "no constraint".
type BookSearchFilters struct {
	Query     string    `json:"query,omitempty" form:"query"`
	Genre     string    `json:"genre,omitempty" form:"genre"`
	Author    string    `json:"author,omitempty" form:"author"`
	MinRating float64   `json:"minRating,omitempty" form:"minRating"`
	SortBy    SortField `json:"sortBy,omitempty" form:"sortBy"`
	SortOrder SortOrder `json:"sortOrder,omitempty" form:"sortOrder"`
}
