package library

import (
	"context"
	"slices"

	"github.com/mrlokans/bookcircle/internal/entities"
)

// StatusAll selects every entry regardless of status.
const StatusAll = "all"

// FilterByStatus returns the entries with status, or all of them for
// StatusAll and "".
func FilterByStatus(userBooks []entities.UserBook, status string) []entities.UserBook {
	result := make([]entities.UserBook, 0, len(userBooks))
	for _, ub := range userBooks {
		if status == "" || status == StatusAll || string(ub.Status) == status {
			result = append(result, ub)
		}
	}
	return result
}

// StatusCounts is the number of entries per library tab.
type StatusCounts struct {
	All       int `json:"all"`
	ToRead    int `json:"to-read"`
	Reading   int `json:"reading"`
	Completed int `json:"completed"`
}

func CountByStatus(userBooks []entities.UserBook) StatusCounts {
	counts := StatusCounts{All: len(userBooks)}
	for _, ub := range userBooks {
		switch ub.Status {
		case entities.ReadingStatusToRead:
			counts.ToRead++
		case entities.ReadingStatusReading:
			counts.Reading++
		case entities.ReadingStatusCompleted:
			counts.Completed++
		}
	}
	return counts
}

// RecentlyAdded orders entries newest first by DateAdded. limit <= 0 means
// no limit.
func RecentlyAdded(userBooks []entities.UserBook, limit int) []entities.UserBook {
	result := slices.Clone(userBooks)
	slices.SortStableFunc(result, func(a, b entities.UserBook) int {
		return b.DateAdded.Compare(a.DateAdded)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

func (s *Store) FilterByStatus(status string) []entities.UserBook {
	return FilterByStatus(s.userBooks.Value(), status)
}

func (s *Store) CountByStatus() StatusCounts {
	return CountByStatus(s.userBooks.Value())
}

func (s *Store) CurrentlyReading() []entities.UserBook {
	return FilterByStatus(s.userBooks.Value(), string(entities.ReadingStatusReading))
}

func (s *Store) RecentlyAdded(limit int) []entities.UserBook {
	return RecentlyAdded(s.userBooks.Value(), limit)
}

// EntryForBook returns the library entry for bookID, if any.
func (s *Store) EntryForBook(bookID string) (*entities.UserBook, bool) {
	for _, ub := range s.userBooks.Value() {
		if ub.BookID == bookID {
			entry := ub
			return &entry, true
		}
	}
	return nil, false
}

// Recommended returns the highest rated books first.
func (s *Store) Recommended(ctx context.Context, limit int) ([]entities.Book, error) {
	books, err := s.GetBooks(ctx, &entities.BookSearchFilters{
		SortBy:    entities.SortByRating,
		SortOrder: entities.SortDesc,
	})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(books) > limit {
		books = books[:limit]
	}
	return books, nil
}
