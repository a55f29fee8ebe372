package entities

// ReviewRequest is the body for creating or editing a review.
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Title   string `json:"title" validate:"required,min=5"`
	Content string `json:"content" validate:"required,min=20"`
}

type AddToLibraryRequest struct {
	BookID string        `json:"bookId" validate:"required"`
	Status ReadingStatus `json:"status" validate:"required,reading_status"`
}

// UpdateUserBookRequest changes any subset of a library entry.
type UpdateUserBookRequest struct {
	Status      *ReadingStatus `json:"status,omitempty" validate:"omitempty,reading_status"`
	Notes       *string        `json:"notes,omitempty"`
	CurrentPage *int           `json:"currentPage,omitempty" validate:"omitempty,min=0"`
}

type UpdateProfileRequest struct {
	Username       string   `json:"username" validate:"required,min=3,max=64"`
	FirstName      string   `json:"firstName" validate:"required"`
	LastName       string   `json:"lastName" validate:"required"`
	Bio            string   `json:"bio" validate:"max=500"`
	AvatarURL      string   `json:"avatarUrl" validate:"omitempty,url"`
	FavoriteGenres []string `json:"favoriteGenres"`
}
