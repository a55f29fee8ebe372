package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcircle/internal/auth"
	"github.com/mrlokans/bookcircle/internal/entities"
	"github.com/mrlokans/bookcircle/internal/session"
	"github.com/mrlokans/bookcircle/internal/validation"
)

// AuthController handles sign in, sign up and the profile endpoints.
type AuthController struct {
	sessions       SessionService
	sessionManager *auth.SessionManager
	rateLimiter    *auth.RateLimiter
	validator      *validation.Validator
}

// NewAuthController creates a new AuthController. sessionManager and
// rateLimiter may be nil.
func NewAuthController(sessions SessionService, sm *auth.SessionManager, rl *auth.RateLimiter, v *validation.Validator) *AuthController {
	return &AuthController{
		sessions:       sessions,
		sessionManager: sm,
		rateLimiter:    rl,
		validator:      v,
	}
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req entities.LoginRequest
	if !bindJSON(c, ac.validator, &req) {
		return
	}

	ip := c.ClientIP()
	if ac.rateLimiter != nil {
		if allowed, retryAfter := ac.rateLimiter.Allow(ip, req.Email); !allowed {
			ac.respondLocked(c, retryAfter.Seconds())
			return
		}
	}

	resp, err := ac.sessions.Login(c.Request.Context(), req)
	if errors.Is(err, session.ErrInvalidCredentials) && ac.rateLimiter != nil {
		if locked, retryAfter := ac.rateLimiter.RecordFailure(ip, req.Email); locked {
			ac.respondLocked(c, retryAfter.Seconds())
			return
		}
	}
	if err != nil {
		respondStoreError(c, err, "login")
		return
	}

	if ac.rateLimiter != nil {
		ac.rateLimiter.RecordSuccess(ip, req.Email)
	}
	if !ac.startSession(c, &resp.User, "Welcome back, "+resp.User.FirstName+"!") {
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Register handles POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req entities.RegisterRequest
	if !bindJSON(c, ac.validator, &req) {
		return
	}

	resp, err := ac.sessions.Register(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err, "register")
		return
	}
	if !ac.startSession(c, &resp.User, "Welcome to BookCircle, "+resp.User.FirstName+"!") {
		return
	}

	respondCreated(c, resp)
}

// Logout handles POST /api/auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.sessions.Logout(); err != nil {
		respondInternalError(c, err, "logout")
		return
	}

	if ac.sessionManager != nil {
		if err := ac.sessionManager.DestroySession(c.Request); err != nil {
			respondInternalError(c, err, "destroy session")
			return
		}
		ac.sessionManager.PutFlash(c.Request, "You have been signed out.")
	}

	respondSuccess(c, "logged out")
}

// Me handles GET /api/auth/me
func (ac *AuthController) Me(c *gin.Context) {
	user := ac.sessions.CurrentUser()
	if user == nil {
		respondNotFound(c, "user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe handles PUT /api/auth/me
func (ac *AuthController) UpdateMe(c *gin.Context) {
	var req entities.UpdateProfileRequest
	if !bindJSON(c, ac.validator, &req) {
		return
	}

	current := ac.sessions.CurrentUser()
	if current == nil {
		respondNotFound(c, "user")
		return
	}

	updated := *current
	updated.Username = req.Username
	updated.FirstName = req.FirstName
	updated.LastName = req.LastName
	updated.Bio = req.Bio
	updated.AvatarURL = req.AvatarURL
	if req.FavoriteGenres != nil {
		updated.FavoriteGenres = req.FavoriteGenres
	}

	user, err := ac.sessions.UpdateUser(c.Request.Context(), updated)
	if err != nil {
		respondStoreError(c, err, "update profile")
		return
	}

	if ac.sessionManager != nil {
		ac.sessionManager.PutFlash(c.Request, "Profile updated successfully!")
	}
	c.JSON(http.StatusOK, user)
}

// startSession ties the cookie session to user and queues a toast.
func (ac *AuthController) startSession(c *gin.Context, user *entities.User, flash string) bool {
	if ac.sessionManager == nil {
		return true
	}
	if err := ac.sessionManager.CreateSession(c.Request, user); err != nil {
		respondInternalError(c, err, "create session")
		return false
	}
	ac.sessionManager.PutFlash(c.Request, flash)
	return true
}

func (ac *AuthController) respondLocked(c *gin.Context, retryAfterSeconds float64) {
	c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfterSeconds))))
	respondError(c, http.StatusTooManyRequests, "too many failed login attempts, try again later", codeRateLimited)
}
