// Package session holds the signed-in user and the authentication flag.
//
// There is one slot: logging in replaces whoever was signed in before.
// The user and access token are mirrored into local storage on every
// change and read back once when the store is created.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mrlokans/bookcircle/internal/auth"
	"github.com/mrlokans/bookcircle/internal/entities"
	"github.com/mrlokans/bookcircle/internal/fixtures"
	"github.com/mrlokans/bookcircle/internal/id"
	"github.com/mrlokans/bookcircle/internal/latency"
	"github.com/mrlokans/bookcircle/internal/localstore"
	"github.com/mrlokans/bookcircle/internal/observable"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	loginDelay    = 1000 * time.Millisecond
	registerDelay = 1500 * time.Millisecond
	updateDelay   = 500 * time.Millisecond
)

type Config struct {
	DemoEmail    string
	DemoPassword string
	BcryptCost   int
	LatencyScale float64
}

type Store struct {
	storage      *localstore.Store
	demoEmail    string
	demoPassword string // bcrypt hash
	latencyScale float64
	now          func() time.Time

	// mu serialises mutations so storage and subjects change together.
	mu            sync.Mutex
	user          *observable.Subject[*entities.User]
	authenticated *observable.Subject[bool]
}

// NewStore creates the session store and restores any persisted session.
func NewStore(storage *localstore.Store, cfg Config) (*Store, error) {
	hash, err := auth.HashPassword(cfg.DemoPassword, cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	s := &Store{
		storage:       storage,
		demoEmail:     cfg.DemoEmail,
		demoPassword:  hash,
		latencyScale:  cfg.LatencyScale,
		now:           time.Now,
		user:          observable.New[*entities.User](nil),
		authenticated: observable.New(false),
	}
	s.loadStoredAuth()
	return s, nil
}

func (s *Store) loadStoredAuth() {
	var user entities.User
	found, err := s.storage.GetJSON(entities.StorageKeyCurrentUser, &user)
	if err != nil {
		log.Printf("Ignoring stored session: %v", err)
		return
	}
	_, hasToken, err := s.storage.GetItem(entities.StorageKeyAccessToken)
	if err != nil {
		log.Printf("Ignoring stored session: %v", err)
		return
	}
	if !found || !hasToken {
		return
	}

	s.user.Next(&user)
	s.authenticated.Next(true)
	log.Printf("Restored session for %s", user.Username)
}

// Login signs in the demo account. Any other credentials fail with
// ErrInvalidCredentials.
func (s *Store) Login(ctx context.Context, req entities.LoginRequest) (*entities.AuthResponse, error) {
	if err := latency.Wait(ctx, latency.Scale(loginDelay, s.latencyScale)); err != nil {
		return nil, err
	}

	if req.Email != s.demoEmail {
		return nil, ErrInvalidCredentials
	}
	if err := auth.CheckPassword(req.Password, s.demoPassword); err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("check password: %w", err)
	}

	user := fixtures.DemoUser()
	user.Email = req.Email
	tokens := fixtures.DemoTokens()

	if err := s.setCurrentUser(&user, tokens.AccessToken); err != nil {
		return nil, err
	}
	return &entities.AuthResponse{User: user, Tokens: tokens}, nil
}

// Register always succeeds and signs the new account in.
func (s *Store) Register(ctx context.Context, req entities.RegisterRequest) (*entities.AuthResponse, error) {
	if err := latency.Wait(ctx, latency.Scale(registerDelay, s.latencyScale)); err != nil {
		return nil, err
	}

	userID, err := id.Generate()
	if err != nil {
		return nil, err
	}

	user := entities.User{
		ID:             userID,
		Email:          req.Email,
		Username:       req.Username,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		JoinedDate:     s.now(),
		FavoriteGenres: []string{},
	}
	tokens := fixtures.NewUserTokens()

	if err := s.setCurrentUser(&user, tokens.AccessToken); err != nil {
		return nil, err
	}
	return &entities.AuthResponse{User: user, Tokens: tokens}, nil
}

// Logout clears the session and its persisted copy.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.RemoveItem(entities.StorageKeyCurrentUser); err != nil {
		return err
	}
	if err := s.storage.RemoveItem(entities.StorageKeyAccessToken); err != nil {
		return err
	}
	s.user.Next(nil)
	s.authenticated.Next(false)
	return nil
}

// UpdateUser replaces the current user and its persisted copy.
func (s *Store) UpdateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	if err := latency.Wait(ctx, latency.Scale(updateDelay, s.latencyScale)); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.SetJSON(entities.StorageKeyCurrentUser, user); err != nil {
		return nil, err
	}
	s.user.Next(&user)
	return &user, nil
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (s *Store) CurrentUser() *entities.User {
	current := s.user.Value()
	if current == nil {
		return nil
	}
	user := *current
	return &user
}

func (s *Store) IsAuthenticated() bool {
	return s.authenticated.Value()
}

// AccessToken returns the persisted access token, or "" when signed out.
func (s *Store) AccessToken() string {
	token, _, err := s.storage.GetItem(entities.StorageKeyAccessToken)
	if err != nil {
		log.Printf("Failed to read access token: %v", err)
		return ""
	}
	return token
}

func (s *Store) UserSubject() *observable.Subject[*entities.User] {
	return s.user
}

func (s *Store) AuthSubject() *observable.Subject[bool] {
	return s.authenticated
}

func (s *Store) setCurrentUser(user *entities.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.SetJSON(entities.StorageKeyCurrentUser, user); err != nil {
		return err
	}
	if err := s.storage.SetItem(entities.StorageKeyAccessToken, token); err != nil {
		return err
	}
	s.user.Next(user)
	s.authenticated.Next(true)
	return nil
}
