package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcircle/internal/auth"
	"github.com/mrlokans/bookcircle/internal/entities"
	"github.com/mrlokans/bookcircle/internal/library"
	"github.com/mrlokans/bookcircle/internal/validation"
)

// LibraryController handles the user's reading list.
type LibraryController struct {
	library        LibraryService
	tasks          TaskQueue
	sessionManager *auth.SessionManager
	validator      *validation.Validator
}

// NewLibraryController creates a new LibraryController. tasks may be nil,
// which disables export. sm may be nil, which disables toast messages.
func NewLibraryController(lib LibraryService, tasks TaskQueue, sm *auth.SessionManager, v *validation.Validator) *LibraryController {
	return &LibraryController{library: lib, tasks: tasks, sessionManager: sm, validator: v}
}

// GetLibrary handles GET /api/library?status=
func (lc *LibraryController) GetLibrary(c *gin.Context) {
	status := c.DefaultQuery("status", library.StatusAll)
	if status != library.StatusAll && !entities.ReadingStatus(status).Valid() {
		respondBadRequest(c, "invalid status: "+status)
		return
	}

	userBooks := lc.library.FilterByStatus(status)
	c.JSON(http.StatusOK, gin.H{
		"userBooks": userBooks,
		"count":     len(userBooks),
		"counts":    lc.library.CountByStatus(),
	})
}

// GetCounts handles GET /api/library/counts
func (lc *LibraryController) GetCounts(c *gin.Context) {
	c.JSON(http.StatusOK, lc.library.CountByStatus())
}

// AddBook handles POST /api/library
func (lc *LibraryController) AddBook(c *gin.Context) {
	var req entities.AddToLibraryRequest
	if !bindJSON(c, lc.validator, &req) {
		return
	}

	userBook, err := lc.library.AddBookToLibrary(c.Request.Context(), req.BookID, req.Status)
	if err != nil {
		respondStoreError(c, err, "add to library")
		return
	}

	lc.flash(c, fmt.Sprintf("Added \"%s\" to %s!", userBook.Book.Title, userBook.Status.Label()))
	respondCreated(c, userBook)
}

// UpdateEntry handles PATCH /api/library/:id
// Any subset of status, notes and currentPage may be sent.
func (lc *LibraryController) UpdateEntry(c *gin.Context) {
	var req entities.UpdateUserBookRequest
	if !bindJSON(c, lc.validator, &req) {
		return
	}
	if req.Status == nil && req.Notes == nil && req.CurrentPage == nil {
		respondBadRequest(c, "nothing to update")
		return
	}

	userBook, err := lc.library.UpdateEntry(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondStoreError(c, err, "update library entry")
		return
	}
	if req.Status != nil {
		lc.flash(c, fmt.Sprintf("Updated \"%s\" status to %s!", userBook.Book.Title, userBook.Status.Label()))
	}

	c.JSON(http.StatusOK, userBook)
}

// RemoveEntry handles DELETE /api/library/:id
// Removing an entry that does not exist still succeeds.
func (lc *LibraryController) RemoveEntry(c *gin.Context) {
	userBookID := c.Param("id")
	title, found := lc.entryTitle(userBookID)

	if err := lc.library.RemoveBookFromLibrary(c.Request.Context(), userBookID); err != nil {
		respondStoreError(c, err, "remove from library")
		return
	}
	if found {
		lc.flash(c, fmt.Sprintf("Removed \"%s\" from your library.", title))
	}
	respondSuccess(c, "removed from library")
}

// Export handles POST /api/library/export
// The export runs on the task queue; poll /api/tasks/:id for its status.
func (lc *LibraryController) Export(c *gin.Context) {
	if lc.tasks == nil {
		respondError(c, http.StatusServiceUnavailable, "task queue is not enabled", codeUnavailable)
		return
	}

	taskID, err := lc.tasks.EnqueueLibraryExport(c.Request.Context(), auth.GetUsername(c))
	if err != nil {
		respondInternalError(c, err, "enqueue export")
		return
	}

	respondAccepted(c, "library export enqueued", gin.H{"task_id": taskID})
}

func (lc *LibraryController) entryTitle(userBookID string) (string, bool) {
	for _, ub := range lc.library.FilterByStatus(library.StatusAll) {
		if ub.ID == userBookID {
			return ub.Book.Title, true
		}
	}
	return "", false
}

func (lc *LibraryController) flash(c *gin.Context, message string) {
	if lc.sessionManager != nil {
		lc.sessionManager.PutFlash(c.Request, message)
	}
}
