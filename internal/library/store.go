// Package library holds the book catalog and the user's reading list.
//
// The catalog is fixed for the life of the store. The reading list is a set
// of UserBook entries, one per book, persisted to local storage after every
// change and published to subscribers as a full snapshot.
package library

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/mrlokans/bookcircle/internal/entities"
	"github.com/mrlokans/bookcircle/internal/id"
	"github.com/mrlokans/bookcircle/internal/latency"
	"github.com/mrlokans/bookcircle/internal/localstore"
	"github.com/mrlokans/bookcircle/internal/observable"
)

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrUserBookNotFound = errors.New("user book not found")
	ErrInvalidStatus    = errors.New("invalid reading status")
)

const (
	getBooksDelay    = 300 * time.Millisecond
	getBookByIDDelay = 200 * time.Millisecond
	addDelay         = 300 * time.Millisecond
	updateDelay      = 200 * time.Millisecond
	removeDelay      = 200 * time.Millisecond
)

type Config struct {
	// UserID is stamped on every new library entry.
	UserID       string
	LatencyScale float64
}

type Store struct {
	storage      *localstore.Store
	books        []entities.Book
	userID       string
	latencyScale float64
	now          func() time.Time

	booksSubject *observable.Subject[[]entities.Book]

	// mu serialises library mutations; published slices are never modified.
	mu        sync.Mutex
	userBooks *observable.Subject[[]entities.UserBook]
}

// NewStore creates a store over catalog and restores the persisted library.
func NewStore(storage *localstore.Store, catalog []entities.Book, cfg Config) *Store {
	books := slices.Clone(catalog)
	s := &Store{
		storage:      storage,
		books:        books,
		userID:       cfg.UserID,
		latencyScale: cfg.LatencyScale,
		now:          time.Now,
		booksSubject: observable.New(books),
		userBooks:    observable.New([]entities.UserBook{}),
	}
	s.loadUserBooks()
	return s
}

func (s *Store) loadUserBooks() {
	var stored []entities.UserBook
	found, err := s.storage.GetJSON(entities.StorageKeyUserBooks, &stored)
	if err != nil {
		log.Printf("Ignoring stored library: %v", err)
		return
	}
	if !found || stored == nil {
		return
	}
	s.userBooks.Next(stored)
	log.Printf("Restored %d library entries", len(stored))
}

func (s *Store) wait(ctx context.Context, d time.Duration) error {
	return latency.Wait(ctx, latency.Scale(d, s.latencyScale))
}

// GetBooks returns the catalog narrowed and ordered by filters.
func (s *Store) GetBooks(ctx context.Context, filters *entities.BookSearchFilters) ([]entities.Book, error) {
	if err := s.wait(ctx, getBooksDelay); err != nil {
		return nil, err
	}
	return FilterBooks(s.books, filters), nil
}

// GetBookByID returns nil without error when no book has the id.
func (s *Store) GetBookByID(ctx context.Context, bookID string) (*entities.Book, error) {
	if err := s.wait(ctx, getBookByIDDelay); err != nil {
		return nil, err
	}
	book, ok := s.findBook(bookID)
	if !ok {
		return nil, nil
	}
	return &book, nil
}

func (s *Store) findBook(bookID string) (entities.Book, bool) {
	for _, b := range s.books {
		if b.ID == bookID {
			return b, true
		}
	}
	return entities.Book{}, false
}

// AddBookToLibrary puts bookID on the reading list with status. A book
// already on the list is replaced in place, so each book appears once.
func (s *Store) AddBookToLibrary(ctx context.Context, bookID string, status entities.ReadingStatus) (*entities.UserBook, error) {
	book, ok := s.findBook(bookID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBookNotFound, bookID)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	entryID, err := id.Generate()
	if err != nil {
		return nil, err
	}

	if err := s.wait(ctx, addDelay); err != nil {
		return nil, err
	}

	now := s.now()
	entry := entities.UserBook{
		ID:        entryID,
		UserID:    s.userID,
		BookID:    bookID,
		Book:      book,
		Status:    status,
		DateAdded: now,
	}
	switch status {
	case entities.ReadingStatusReading:
		entry.DateStarted = timePtr(now)
	case entities.ReadingStatusCompleted:
		entry.DateFinished = timePtr(now)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.Clone(s.userBooks.Value())
	if i := slices.IndexFunc(next, func(ub entities.UserBook) bool { return ub.BookID == bookID }); i >= 0 {
		next[i] = entry
	} else {
		next = append(next, entry)
	}

	if err := s.commit(next); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateBookStatus moves an entry to status. Entering reading stamps
// DateStarted only if it is unset; entering completed always re-stamps
// DateFinished.
func (s *Store) UpdateBookStatus(ctx context.Context, userBookID string, status entities.ReadingStatus) (*entities.UserBook, error) {
	return s.UpdateEntry(ctx, userBookID, entities.UpdateUserBookRequest{Status: &status})
}

// UpdateNotes replaces the free-text notes of an entry.
func (s *Store) UpdateNotes(ctx context.Context, userBookID, notes string) (*entities.UserBook, error) {
	return s.UpdateEntry(ctx, userBookID, entities.UpdateUserBookRequest{Notes: &notes})
}

// UpdateProgress records the page the reader is on. Pages below zero are
// clamped to zero.
func (s *Store) UpdateProgress(ctx context.Context, userBookID string, currentPage int) (*entities.UserBook, error) {
	return s.UpdateEntry(ctx, userBookID, entities.UpdateUserBookRequest{CurrentPage: &currentPage})
}

// UpdateEntry applies every set field of patch to one entry and publishes
// a single snapshot. Nothing is changed when any field is rejected.
func (s *Store) UpdateEntry(ctx context.Context, userBookID string, patch entities.UpdateUserBookRequest) (*entities.UserBook, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *patch.Status)
	}
	return s.updateEntry(ctx, userBookID, func(ub *entities.UserBook, now time.Time) {
		if patch.Status != nil {
			applyStatus(ub, *patch.Status, now)
		}
		if patch.Notes != nil {
			ub.Notes = *patch.Notes
		}
		if patch.CurrentPage != nil {
			page := max(*patch.CurrentPage, 0)
			ub.CurrentPage = &page
		}
	})
}

func applyStatus(ub *entities.UserBook, status entities.ReadingStatus, now time.Time) {
	ub.Status = status
	switch status {
	case entities.ReadingStatusReading:
		if ub.DateStarted == nil {
			ub.DateStarted = timePtr(now)
		}
	case entities.ReadingStatusCompleted:
		ub.DateFinished = timePtr(now)
	}
}

func (s *Store) updateEntry(ctx context.Context, userBookID string, apply func(*entities.UserBook, time.Time)) (*entities.UserBook, error) {
	if err := s.wait(ctx, updateDelay); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.Clone(s.userBooks.Value())
	i := slices.IndexFunc(next, func(ub entities.UserBook) bool { return ub.ID == userBookID })
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUserBookNotFound, userBookID)
	}

	updated := next[i]
	apply(&updated, s.now())
	next[i] = updated

	if err := s.commit(next); err != nil {
		return nil, err
	}
	return &updated, nil
}

// RemoveBookFromLibrary deletes an entry. Unknown ids are ignored.
func (s *Store) RemoveBookFromLibrary(ctx context.Context, userBookID string) error {
	if err := s.wait(ctx, removeDelay); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.userBooks.Value()
	next := make([]entities.UserBook, 0, len(current))
	for _, ub := range current {
		if ub.ID != userBookID {
			next = append(next, ub)
		}
	}
	return s.commit(next)
}

// Reset empties the library.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit([]entities.UserBook{})
}

// commit persists next and publishes it. Callers hold mu.
func (s *Store) commit(next []entities.UserBook) error {
	if err := s.storage.SetJSON(entities.StorageKeyUserBooks, next); err != nil {
		return fmt.Errorf("save library: %w", err)
	}
	s.userBooks.Next(next)
	return nil
}

// UserBooks returns a copy of the current library.
func (s *Store) UserBooks() []entities.UserBook {
	return slices.Clone(s.userBooks.Value())
}

func (s *Store) BooksSubject() *observable.Subject[[]entities.Book] {
	return s.booksSubject
}

func (s *Store) UserBooksSubject() *observable.Subject[[]entities.UserBook] {
	return s.userBooks
}

func timePtr(t time.Time) *time.Time {
	return &t
}
