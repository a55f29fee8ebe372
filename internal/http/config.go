package http

import (
	"github.com/mrlokans/bookcircle/internal/auth"
	"github.com/mrlokans/bookcircle/internal/database"
	"github.com/mrlokans/bookcircle/internal/validation"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Stores
	Sessions SessionService
	Library  LibraryService
	Reviews  ReviewService

	// Database backs the health check.
	Database *database.Database

	// Cookie sessions and toast messages (optional)
	SessionManager *auth.SessionManager

	// Login throttling (optional)
	RateLimiter *auth.RateLimiter

	// CSRF protection is enabled when the secret is set
	CSRFSecret    []byte
	SecureCookies bool

	// HSTSMaxAge enables Strict-Transport-Security when positive.
	HSTSMaxAge int

	// Validator for request bodies; a default one is built when nil.
	Validator *validation.Validator

	// Cover image cache (optional)
	Covers CoverCache

	// Task queue client (optional)
	TaskQueue TaskQueue

	// Demo reset scheduler (optional)
	DemoReset DemoResetStatus

	// Application info
	Version string
}
