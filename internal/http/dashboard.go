package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcircle/internal/auth"
	"github.com/mrlokans/bookcircle/internal/entities"
	"github.com/mrlokans/bookcircle/internal/library"
)

const dashboardListLimit = 3

// DashboardResponse is the signed-in landing page.
type DashboardResponse struct {
	User             *entities.User       `json:"user"`
	CurrentlyReading []entities.UserBook  `json:"currentlyReading"`
	Counts           library.StatusCounts `json:"counts"`
	RecentlyAdded    []entities.UserBook  `json:"recentlyAdded"`
	RecentReviews    []entities.Review    `json:"recentReviews"`
	Recommended      []entities.Book      `json:"recommended"`
}

type DashboardController struct {
	sessions SessionService
	library  LibraryService
	reviews  ReviewService
}

func NewDashboardController(sessions SessionService, lib LibraryService, rev ReviewService) *DashboardController {
	return &DashboardController{sessions: sessions, library: lib, reviews: rev}
}

// Get handles GET /api/dashboard
func (dc *DashboardController) Get(c *gin.Context) {
	recommended, err := dc.library.Recommended(c.Request.Context(), dashboardListLimit)
	if err != nil {
		respondStoreError(c, err, "recommended books")
		return
	}

	reviews := dc.reviews.AllReviews()
	if len(reviews) > dashboardListLimit {
		reviews = reviews[:dashboardListLimit]
	}

	c.JSON(http.StatusOK, DashboardResponse{
		User:             dc.sessions.CurrentUser(),
		CurrentlyReading: dc.library.CurrentlyReading(),
		Counts:           dc.library.CountByStatus(),
		RecentlyAdded:    dc.library.RecentlyAdded(dashboardListLimit),
		RecentReviews:    reviews,
		Recommended:      recommended,
	})
}

// NotificationsController hands out toast messages queued in the cookie
// session.
type NotificationsController struct {
	sessionManager *auth.SessionManager
}

func NewNotificationsController(sm *auth.SessionManager) *NotificationsController {
	return &NotificationsController{sessionManager: sm}
}

// Pop handles GET /api/notifications
// Each message is returned once; message is empty when nothing is queued.
func (nc *NotificationsController) Pop(c *gin.Context) {
	var message string
	if nc.sessionManager != nil {
		message = nc.sessionManager.PopFlash(c.Request)
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
