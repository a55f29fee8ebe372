// Package reviews holds the community reviews and the current viewer's likes.
//
// Reviews live in memory only; a fresh store starts from the seed reviews.
package reviews

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/mrlokans/bookcircle/internal/entities"
	"github.com/mrlokans/bookcircle/internal/fixtures"
	"github.com/mrlokans/bookcircle/internal/id"
	"github.com/mrlokans/bookcircle/internal/latency"
	"github.com/mrlokans/bookcircle/internal/observable"
)

var ErrReviewNotFound = errors.New("review not found")

const (
	queryDelay  = 300 * time.Millisecond
	writeDelay  = 500 * time.Millisecond
	deleteDelay = 300 * time.Millisecond
	likeDelay   = 200 * time.Millisecond
)

type Config struct {
	LatencyScale float64
}

type Store struct {
	latencyScale float64
	now          func() time.Time

	mu      sync.Mutex
	reviews *observable.Subject[[]entities.Review]
}

func NewStore(cfg Config) *Store {
	return &Store{
		latencyScale: cfg.LatencyScale,
		now:          time.Now,
		reviews:      observable.New(fixtures.Reviews()),
	}
}

func (s *Store) wait(ctx context.Context, d time.Duration) error {
	return latency.Wait(ctx, latency.Scale(d, s.latencyScale))
}

func (s *Store) GetReviewsByBookID(ctx context.Context, bookID string) ([]entities.Review, error) {
	if err := s.wait(ctx, queryDelay); err != nil {
		return nil, err
	}
	return s.filter(func(r entities.Review) bool { return r.BookID == bookID }), nil
}

func (s *Store) GetReviewsByUserID(ctx context.Context, userID string) ([]entities.Review, error) {
	if err := s.wait(ctx, queryDelay); err != nil {
		return nil, err
	}
	return s.filter(func(r entities.Review) bool { return r.UserID == userID }), nil
}

// AllReviews returns a copy of every review in insertion order.
func (s *Store) AllReviews() []entities.Review {
	return slices.Clone(s.reviews.Value())
}

func (s *Store) filter(keep func(entities.Review) bool) []entities.Review {
	result := []entities.Review{}
	for _, r := range s.reviews.Value() {
		if keep(r) {
			result = append(result, r)
		}
	}
	return result
}

// CreateReview appends a review written by the demo account. The embedded
// book carries only the id and language; rating is stored as given.
func (s *Store) CreateReview(ctx context.Context, bookID string, rating int, title, content string) (*entities.Review, error) {
	reviewID, err := id.Generate()
	if err != nil {
		return nil, err
	}
	if err := s.wait(ctx, writeDelay); err != nil {
		return nil, err
	}

	review := entities.Review{
		ID:          reviewID,
		UserID:      fixtures.DemoUserID,
		BookID:      bookID,
		User:        fixtures.DemoAuthor(),
		Book:        entities.Book{ID: bookID, Genre: []string{}, Language: fixtures.DefaultLanguage},
		Rating:      rating,
		Title:       title,
		Content:     content,
		DateCreated: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(slices.Clone(s.reviews.Value()), review)
	s.reviews.Next(next)
	return &review, nil
}

// UpdateReview replaces rating, title and content and stamps DateUpdated.
func (s *Store) UpdateReview(ctx context.Context, reviewID string, rating int, title, content string) (*entities.Review, error) {
	if err := s.wait(ctx, writeDelay); err != nil {
		return nil, err
	}
	return s.update(reviewID, func(r *entities.Review) {
		now := s.now()
		r.Rating = rating
		r.Title = title
		r.Content = content
		r.DateUpdated = &now
	})
}

// DeleteReview removes a review. Unknown ids are ignored.
func (s *Store) DeleteReview(ctx context.Context, reviewID string) error {
	if err := s.wait(ctx, deleteDelay); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.reviews.Value()
	next := make([]entities.Review, 0, len(current))
	for _, r := range current {
		if r.ID != reviewID {
			next = append(next, r)
		}
	}
	s.reviews.Next(next)
	return nil
}

// ToggleReviewLike flips the viewer's like and moves LikesCount with it.
func (s *Store) ToggleReviewLike(ctx context.Context, reviewID string) (*entities.Review, error) {
	if err := s.wait(ctx, likeDelay); err != nil {
		return nil, err
	}
	return s.update(reviewID, func(r *entities.Review) {
		if r.IsLikedByCurrentUser {
			r.LikesCount--
		} else {
			r.LikesCount++
		}
		r.IsLikedByCurrentUser = !r.IsLikedByCurrentUser
	})
}

// Reset restores the seed reviews.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews.Next(fixtures.Reviews())
}

func (s *Store) ReviewsSubject() *observable.Subject[[]entities.Review] {
	return s.reviews
}

func (s *Store) update(reviewID string, apply func(*entities.Review)) (*entities.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.Clone(s.reviews.Value())
	i := slices.IndexFunc(next, func(r entities.Review) bool { return r.ID == reviewID })
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrReviewNotFound, reviewID)
	}

	updated := next[i]
	apply(&updated)
	next[i] = updated
	s.reviews.Next(next)
	return &updated, nil
}
