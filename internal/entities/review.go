package entities

import (
	"time"
)

// ReviewAuthor is the author display info copied into a review.
type ReviewAuthor struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Review is a user's rating and write-up of a book.
// IsLikedByCurrentUser tracks a single viewer only; likes from several
// viewers are not modelled.
type Review struct {
	ID                   string       `json:"id"`
	UserID               string       `json:"userId"`
	BookID               string       `json:"bookId"`
	User                 ReviewAuthor `json:"user"`
	Book                 Book         `json:"book"`
	Rating               int          `json:"rating"`
	Title                string       `json:"title"`
	Content              string       `json:"content"`
	DateCreated          time.Time    `json:"dateCreated"`
	DateUpdated          *time.Time   `json:"dateUpdated,omitempty"`
	LikesCount           int          `json:"likesCount"`
	IsLikedByCurrentUser bool         `json:"isLikedByCurrentUser"`
}
