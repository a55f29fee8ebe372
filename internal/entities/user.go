package entities

import (
	"time"
)

// ReadingStats is display data attached to a user profile. Nothing in the
// library or review stores recomputes it.
type ReadingStats struct {
	BooksRead        int `json:"booksRead"`
	PagesRead        int `json:"pagesRead"`
	ReviewsWritten   int `json:"reviewsWritten"`
	CurrentlyReading int `json:"currentlyReading"`
}

type User struct {
	ID             string       `json:"id"`
	Email          string       `json:"email"`
	Username       string       `json:"username"`
	FirstName      string       `json:"firstName"`
	LastName       string       `json:"lastName"`
	Bio            string       `json:"bio,omitempty"`
	AvatarURL      string       `json:"avatarUrl,omitempty"`
	JoinedDate     time.Time    `json:"joinedDate"`
	FavoriteGenres []string     `json:"favoriteGenres"`
	ReadingStats   ReadingStats `json:"readingStats"`
}

// AuthTokens are opaque strings; they are stored as-is and never validated.
type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AuthResponse struct {
	User   User       `json:"user"`
	Tokens AuthTokens `json:"tokens"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Username  string `json:"username" validate:"required,min=3,max=64"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}
