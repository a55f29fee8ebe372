package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcircle/internal/auth"
	"github.com/mrlokans/bookcircle/internal/validation"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())
	if cfg.HSTSMaxAge > 0 {
		router.Use(auth.StrictTransportSecurityMiddleware(cfg.HSTSMaxAge))
	}

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies, cfg.Sessions))
	}

	// Session runs after CSRF so session context isn't overwritten by CSRF's request replacement
	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}

	authMiddleware := auth.NewMiddleware(cfg.Sessions, cfg.SessionManager)
	router.Use(authMiddleware.Handler())
	requireAuth := authMiddleware.RequireAuth()

	v := cfg.Validator
	if v == nil {
		v = validation.New()
	}

	health := NewHealthController(cfg.Database, cfg.TaskQueue, cfg.Version)
	authController := NewAuthController(cfg.Sessions, cfg.SessionManager, cfg.RateLimiter, v)
	booksController := NewBooksController(cfg.Library, cfg.Reviews, v)
	libraryController := NewLibraryController(cfg.Library, cfg.TaskQueue, cfg.SessionManager, v)
	reviewsController := NewReviewsController(cfg.Reviews, v)
	dashboardController := NewDashboardController(cfg.Sessions, cfg.Library, cfg.Reviews)
	notificationsController := NewNotificationsController(cfg.SessionManager)
	streamController := NewStreamController(cfg.Sessions, cfg.Library, cfg.Reviews)
	demoController := NewDemoController(cfg.DemoReset)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", health.Ping)

	api := router.Group("/api")

	// Auth endpoints
	api.POST("/auth/login", authController.Login)
	api.POST("/auth/register", authController.Register)
	api.POST("/auth/logout", authController.Logout)
	api.GET("/auth/me", requireAuth, authController.Me)
	api.PUT("/auth/me", requireAuth, authController.UpdateMe)

	// Catalog endpoints
	api.GET("/books", booksController.GetBooks)
	api.GET("/books/:id", booksController.GetBook)
	api.GET("/books/:id/reviews", booksController.GetBookReviews)
	if cfg.Covers != nil {
		coversController := NewCoversController(cfg.Covers, cfg.Library)
		api.GET("/books/:id/cover", coversController.GetCover)
	}
	api.POST("/books/:id/reviews", requireAuth, booksController.CreateReview)

	// Library endpoints
	lib := api.Group("/library", requireAuth)
	lib.GET("", libraryController.GetLibrary)
	lib.GET("/counts", libraryController.GetCounts)
	lib.POST("", libraryController.AddBook)
	lib.POST("/export", libraryController.Export)
	lib.PATCH("/:id", libraryController.UpdateEntry)
	lib.DELETE("/:id", libraryController.RemoveEntry)

	// Review endpoints
	api.GET("/reviews", reviewsController.GetAllReviews)
	api.GET("/users/:id/reviews", reviewsController.GetUserReviews)
	api.PUT("/reviews/:id", requireAuth, reviewsController.UpdateReview)
	api.DELETE("/reviews/:id", requireAuth, reviewsController.DeleteReview)
	api.POST("/reviews/:id/like", requireAuth, reviewsController.ToggleLike)

	api.GET("/dashboard", requireAuth, dashboardController.Get)
	api.GET("/notifications", notificationsController.Pop)

	// Server-Sent Events
	api.GET("/stream/library", requireAuth, streamController.Library)
	api.GET("/stream/reviews", streamController.Reviews)
	api.GET("/stream/session", requireAuth, streamController.Session)
	api.GET("/stream/auth", streamController.Auth)
	api.GET("/stream/books", streamController.Books)

	// Task status endpoint
	if cfg.TaskQueue != nil {
		tasksController := NewTasksController(cfg.TaskQueue)
		api.GET("/tasks/:id", tasksController.GetTaskStatus)
	}

	api.GET("/demo/status", demoController.GetStatus)

	return router
}
