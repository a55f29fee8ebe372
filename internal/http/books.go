package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcircle/internal/entities"
	"github.com/mrlokans/bookcircle/internal/library"
	"github.com/mrlokans/bookcircle/internal/validation"
)

// BooksController handles catalog endpoints and per-book reviews.
type BooksController struct {
	library   LibraryService
	reviews   ReviewService
	validator *validation.Validator
}

// NewBooksController creates a new BooksController.
func NewBooksController(lib LibraryService, rev ReviewService, v *validation.Validator) *BooksController {
	return &BooksController{library: lib, reviews: rev, validator: v}
}

// GetBooks handles GET /api/books
// Accepts query, genre, author, minRating and either sort=field:order or
// sortBy/sortOrder.
func (bc *BooksController) GetBooks(c *gin.Context) {
	var filters entities.BookSearchFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		respondBadRequest(c, "invalid search parameters")
		return
	}
	if sort := c.Query("sort"); sort != "" {
		filters.SortBy, filters.SortOrder = library.ParseSort(sort)
	}
	if filters.SortBy != "" && !library.ValidSortField(filters.SortBy) {
		respondBadRequest(c, "invalid sort field: "+string(filters.SortBy))
		return
	}
	if filters.SortOrder != "" && filters.SortOrder != entities.SortAsc && filters.SortOrder != entities.SortDesc {
		respondBadRequest(c, "invalid sort order: "+string(filters.SortOrder))
		return
	}

	books, err := bc.library.GetBooks(c.Request.Context(), &filters)
	if err != nil {
		respondStoreError(c, err, "get books")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"books": books,
		"count": len(books),
	})
}

// GetBook handles GET /api/books/:id
// The response carries the caller's library entry for the book, if any.
func (bc *BooksController) GetBook(c *gin.Context) {
	book, err := bc.library.GetBookByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "get book")
		return
	}
	if book == nil {
		respondNotFound(c, "book")
		return
	}

	var entry *entities.UserBook
	if e, ok := bc.library.EntryForBook(book.ID); ok {
		entry = e
	}

	c.JSON(http.StatusOK, gin.H{
		"book":         book,
		"libraryEntry": entry,
	})
}

// GetBookReviews handles GET /api/books/:id/reviews
func (bc *BooksController) GetBookReviews(c *gin.Context) {
	reviews, err := bc.reviews.GetReviewsByBookID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "get book reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

// CreateReview handles POST /api/books/:id/reviews
func (bc *BooksController) CreateReview(c *gin.Context) {
	var req entities.ReviewRequest
	if !bindJSON(c, bc.validator, &req) {
		return
	}

	bookID := c.Param("id")
	book, err := bc.library.GetBookByID(c.Request.Context(), bookID)
	if err != nil {
		respondStoreError(c, err, "get book")
		return
	}
	if book == nil {
		respondNotFound(c, "book")
		return
	}

	review, err := bc.reviews.CreateReview(c.Request.Context(), bookID, req.Rating, req.Title, req.Content)
	if err != nil {
		respondStoreError(c, err, "create review")
		return
	}

	respondCreated(c, review)
}
