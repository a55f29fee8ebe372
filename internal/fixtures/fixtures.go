// Package fixtures holds the demo catalog, the demo account and the seed
// reviews the stores start from.
package fixtures

import (
	"time"

	"github.com/mrlokans/bookcircle/internal/entities"
)

const (
	DemoUserID       = "1"
	DemoEmail        = "demo@bookcircle.com"
	DemoPassword     = "demo123"
	DemoUsername     = "bookworm_demo"
	DemoAvatarURL    = "https://images.unsplash.com/photo-1494790108755-2616b612b47c?w=40&h=40&fit=crop&crop=face"
	DemoAccessToken  = "demo-access-token"
	DemoRefreshToken = "demo-refresh-token"

	NewUserAccessToken  = "new-user-access-token"
	NewUserRefreshToken = "new-user-refresh-token"

	DefaultLanguage = "English"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

// Books returns a fresh copy of the six-book demo catalog.
func Books() []entities.Book {
	return []entities.Book{
		{
			ID:            "1",
			Title:         "The Midnight Library",
			Author:        "Matt Haig",
			Description:   "Between life and death there is a library, and within that library, the shelves go on forever. Every book provides a chance to try another life you could have lived.",
			CoverURL:      "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=300&h=450&fit=crop",
			Genre:         []string{"Fiction", "Philosophy"},
			AverageRating: 4.2,
			RatingsCount:  1247,
			PageCount:     288,
			Language:      DefaultLanguage,
			PublishedDate: date("2020-08-13"),
		},
		{
			ID:            "2",
			Title:         "Dune",
			Author:        "Frank Herbert",
			Description:   "Set on the desert planet Arrakis, Dune is the story of the boy Paul Atreides, heir to a noble family tasked with ruling an inhospitable world.",
			CoverURL:      "https://images.unsplash.com/photo-1589829085413-56de8ae18c73?w=300&h=450&fit=crop",
			Genre:         []string{"Science Fiction", "Adventure"},
			AverageRating: 4.6,
			RatingsCount:  2156,
			PageCount:     688,
			Language:      DefaultLanguage,
			PublishedDate: date("1965-08-01"),
		},
		{
			ID:            "3",
			Title:         "The Seven Husbands of Evelyn Hugo",
			Author:        "Taylor Jenkins Reid",
			Description:   "Reclusive Hollywood icon Evelyn Hugo is finally ready to tell the truth about her glamorous and scandalous life.",
			CoverURL:      "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=450&fit=crop",
			Genre:         []string{"Historical Fiction", "Romance"},
			AverageRating: 4.5,
			RatingsCount:  3421,
			PageCount:     400,
			Language:      DefaultLanguage,
			PublishedDate: date("2017-06-13"),
		},
		{
			ID:            "4",
			Title:         "Educated",
			Author:        "Tara Westover",
			Description:   "Born to survivalists in the mountains of Idaho, Tara Westover was seventeen the first time she set foot in a classroom.",
			CoverURL:      "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=450&fit=crop",
			Genre:         []string{"Memoir", "Biography"},
			AverageRating: 4.4,
			RatingsCount:  1876,
			PageCount:     334,
			Language:      DefaultLanguage,
			PublishedDate: date("2018-02-20"),
		},
		{
			ID:            "5",
			Title:         "The Silent Patient",
			Author:        "Alex Michaelides",
			Description:   "The Silent Patient is a shocking psychological thriller of a woman's act of violence against her husband, and of the therapist obsessed with uncovering her motive.",
			CoverURL:      "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=300&h=450&fit=crop",
			Genre:         []string{"Thriller", "Mystery"},
			AverageRating: 4.1,
			RatingsCount:  2934,
			PageCount:     336,
			Language:      DefaultLanguage,
			PublishedDate: date("2019-02-05"),
		},
		{
			ID:            "6",
			Title:         "Atomic Habits",
			Author:        "James Clear",
			Description:   "An Easy & Proven Way to Build Good Habits & Break Bad Ones. No matter your goals, Atomic Habits offers a proven framework for improving every day.",
			CoverURL:      "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=300&h=450&fit=crop",
			Genre:         []string{"Self-Help", "Psychology"},
			AverageRating: 4.7,
			RatingsCount:  4521,
			PageCount:     320,
			Language:      DefaultLanguage,
			PublishedDate: date("2018-10-16"),
		},
	}
}

// DemoUser returns the account produced by a successful demo login.
func DemoUser() entities.User {
	return entities.User{
		ID:             DemoUserID,
		Email:          DemoEmail,
		Username:       DemoUsername,
		FirstName:      "Demo",
		LastName:       "User",
		Bio:            "Passionate reader and book reviewer",
		JoinedDate:     *date("2023-01-15"),
		FavoriteGenres: []string{"Fiction", "Mystery", "Science Fiction"},
		ReadingStats: entities.ReadingStats{
			BooksRead:        47,
			PagesRead:        12450,
			ReviewsWritten:   23,
			CurrentlyReading: 3,
		},
	}
}

func DemoTokens() entities.AuthTokens {
	return entities.AuthTokens{
		AccessToken:  DemoAccessToken,
		RefreshToken: DemoRefreshToken,
	}
}

func NewUserTokens() entities.AuthTokens {
	return entities.AuthTokens{
		AccessToken:  NewUserAccessToken,
		RefreshToken: NewUserRefreshToken,
	}
}

// DemoAuthor is the identity stamped on reviews written through the store.
func DemoAuthor() entities.ReviewAuthor {
	return entities.ReviewAuthor{
		Username:  DemoUsername,
		AvatarURL: DemoAvatarURL,
	}
}

// BookStub is the reduced book copy embedded in reviews.
func BookStub(id, title, author string) entities.Book {
	return entities.Book{
		ID:       id,
		Title:    title,
		Author:   author,
		Genre:    []string{},
		Language: DefaultLanguage,
	}
}

// Reviews returns a fresh copy of the seed reviews.
func Reviews() []entities.Review {
	return []entities.Review{
		{
			ID:                   "1",
			UserID:               DemoUserID,
			BookID:               "1",
			User:                 DemoAuthor(),
			Book:                 BookStub("1", "The Midnight Library", "Matt Haig"),
			Rating:               5,
			Title:                "A Beautiful Exploration of Life's Possibilities",
			Content:              "This book completely changed my perspective on life and the choices we make. Matt Haig's writing is both philosophical and accessible, making complex ideas about regret and possibility feel tangible. The concept of the midnight library is brilliant.",
			DateCreated:          *date("2024-01-15"),
			LikesCount:           23,
			IsLikedByCurrentUser: true,
		},
		{
			ID:     "2",
			UserID: "2",
			BookID: "2",
			User: entities.ReviewAuthor{
				Username:  "scifi_reader",
				AvatarURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=40&h=40&fit=crop&crop=face",
			},
			Book:                 BookStub("2", "Dune", "Frank Herbert"),
			Rating:               5,
			Title:                "A Masterpiece of Science Fiction",
			Content:              "Dune is not just a book; it's an entire world. Herbert's world-building is unparalleled, and the political intrigue keeps you engaged throughout. A must-read for any sci-fi fan.",
			DateCreated:          *date("2024-01-10"),
			LikesCount:           45,
			IsLikedByCurrentUser: false,
		},
	}
}
