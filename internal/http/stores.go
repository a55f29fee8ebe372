package http

import (
	"context"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/bookcircle/internal/auth"
	"github.com/mrlokans/bookcircle/internal/entities"
	"github.com/mrlokans/bookcircle/internal/library"
	"github.com/mrlokans/bookcircle/internal/observable"
)

// This file collects the store interfaces used by HTTP controllers.
// Each controller takes only the interface it needs; the concrete stores
// in session, library and reviews satisfy them.

// SessionService is the signed-in account and its mutations.
type SessionService interface {
	auth.SessionState
	Login(ctx context.Context, req entities.LoginRequest) (*entities.AuthResponse, error)
	Register(ctx context.Context, req entities.RegisterRequest) (*entities.AuthResponse, error)
	Logout() error
	UpdateUser(ctx context.Context, user entities.User) (*entities.User, error)
	UserSubject() *observable.Subject[*entities.User]
	AuthSubject() *observable.Subject[bool]
}

// CatalogReader provides read access to the book catalog.
type CatalogReader interface {
	GetBooks(ctx context.Context, filters *entities.BookSearchFilters) ([]entities.Book, error)
	GetBookByID(ctx context.Context, bookID string) (*entities.Book, error)
	Recommended(ctx context.Context, limit int) ([]entities.Book, error)
}

// LibraryService is the catalog plus the user's reading list.
type LibraryService interface {
	CatalogReader
	AddBookToLibrary(ctx context.Context, bookID string, status entities.ReadingStatus) (*entities.UserBook, error)
	UpdateEntry(ctx context.Context, userBookID string, patch entities.UpdateUserBookRequest) (*entities.UserBook, error)
	RemoveBookFromLibrary(ctx context.Context, userBookID string) error
	FilterByStatus(status string) []entities.UserBook
	CountByStatus() library.StatusCounts
	CurrentlyReading() []entities.UserBook
	RecentlyAdded(limit int) []entities.UserBook
	EntryForBook(bookID string) (*entities.UserBook, bool)
	BooksSubject() *observable.Subject[[]entities.Book]
	UserBooksSubject() *observable.Subject[[]entities.UserBook]
}

// ReviewService is the shared review feed.
type ReviewService interface {
	GetReviewsByBookID(ctx context.Context, bookID string) ([]entities.Review, error)
	GetReviewsByUserID(ctx context.Context, userID string) ([]entities.Review, error)
	AllReviews() []entities.Review
	CreateReview(ctx context.Context, bookID string, rating int, title, content string) (*entities.Review, error)
	UpdateReview(ctx context.Context, reviewID string, rating int, title, content string) (*entities.Review, error)
	DeleteReview(ctx context.Context, reviewID string) error
	ToggleReviewLike(ctx context.Context, reviewID string) (*entities.Review, error)
	ReviewsSubject() *observable.Subject[[]entities.Review]
}

// CoverCache returns a local file for a book's cover image.
type CoverCache interface {
	GetCover(ctx context.Context, bookID, coverURL string) (string, error)
}

// TaskQueue enqueues background jobs and reports on them.
type TaskQueue interface {
	EnqueueLibraryExport(ctx context.Context, requestedBy string) (string, error)
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
}

// DemoResetStatus reports on the scheduled demo data reset.
type DemoResetStatus interface {
	IsRunning() bool
	LastRun() time.Time
	NextRun() *time.Time
}
