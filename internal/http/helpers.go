package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcircle/internal/library"
	"github.com/mrlokans/bookcircle/internal/reviews"
	"github.com/mrlokans/bookcircle/internal/session"
	"github.com/mrlokans/bookcircle/internal/validation"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (validation errors, etc.)
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Machine-readable error codes.
const (
	codeBadRequest         = "bad_request"
	codeValidationFailed   = "validation_failed"
	codeNotFound           = "not_found"
	codeInvalidCredentials = "invalid_credentials"
	codeRateLimited        = "rate_limited"
	codeUnavailable        = "unavailable"
	codeCancelled          = "request_cancelled"
	codeInternal           = "internal_error"
)

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: codeBadRequest})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found", Code: codeNotFound})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, action string) {
	log.Printf("Internal error (%s): %v", action, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: codeInternal})
}

// respondError sends an error response with the given status code.
// Use the specific helpers (respondBadRequest, respondNotFound, etc.) when possible.
func respondError(c *gin.Context, status int, message, code string) {
	c.JSON(status, ErrorResponse{Error: message, Code: code})
}

// respondStoreError maps a store error onto an HTTP response.
func respondStoreError(c *gin.Context, err error, action string) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Code:    codeValidationFailed,
			Details: verr.Fields,
		})
	case errors.Is(err, library.ErrBookNotFound):
		respondNotFound(c, "book")
	case errors.Is(err, library.ErrUserBookNotFound):
		respondNotFound(c, "library entry")
	case errors.Is(err, reviews.ErrReviewNotFound):
		respondNotFound(c, "review")
	case errors.Is(err, library.ErrInvalidStatus):
		respondBadRequest(c, err.Error())
	case errors.Is(err, session.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "invalid email or password", codeInvalidCredentials)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondError(c, http.StatusRequestTimeout, "request cancelled", codeCancelled)
	default:
		respondInternalError(c, err, action)
	}
}

// --- Success Response Helpers ---

// respondSuccess sends a 200 OK response with a message.
func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// respondAccepted sends a 202 Accepted response (for async operations).
func respondAccepted(c *gin.Context, message string, data any) {
	c.JSON(http.StatusAccepted, SuccessResponse{Message: message, Data: data})
}

// --- Request Binding ---

// bindJSON decodes the body into req and validates it.
// On failure it writes a 400 response and returns false.
func bindJSON(c *gin.Context, v *validation.Validator, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondBadRequest(c, "invalid request body")
		return false
	}
	if err := v.Validate(req); err != nil {
		respondStoreError(c, err, "validate request")
		return false
	}
	return true
}
