package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookcircle/internal/auth"
	"github.com/mrlokans/bookcircle/internal/entities"
	"github.com/mrlokans/bookcircle/internal/fixtures"
)

func TestAuthController_Login(t *testing.T) {
	t.Run("demo credentials sign in", func(t *testing.T) {
		env := setupTestEnv(t)

		w := env.do(t, http.MethodPost, "/api/auth/login", entities.LoginRequest{
			Email:    fixtures.DemoEmail,
			Password: "demo123",
		})

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[entities.AuthResponse](t, w)
		assert.Equal(t, fixtures.DemoUserID, resp.User.ID)
		assert.Equal(t, "demo-access-token", resp.Tokens.AccessToken)
		assert.True(t, env.sessions.IsAuthenticated())
		assert.Contains(t, env.cookies, "bookcircle_session")
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		env := setupTestEnv(t)

		w := env.do(t, http.MethodPost, "/api/auth/login", entities.LoginRequest{
			Email:    fixtures.DemoEmail,
			Password: "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid_credentials", decode[ErrorResponse](t, w).Code)
		assert.False(t, env.sessions.IsAuthenticated())
	})

	t.Run("invalid body is 400 with field details", func(t *testing.T) {
		env := setupTestEnv(t)

		w := env.do(t, http.MethodPost, "/api/auth/login", map[string]string{"email": "not-an-email"})

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		}](t, w)
		assert.Equal(t, "validation_failed", resp.Code)
		assert.Contains(t, resp.Details, "email")
		assert.Contains(t, resp.Details, "password")
	})

	t.Run("malformed JSON is 400", func(t *testing.T) {
		env := setupTestEnv(t)

		w := env.do(t, http.MethodPost, "/api/auth/login", "just a string")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "bad_request", decode[ErrorResponse](t, w).Code)
	})

	t.Run("repeated failures are throttled", func(t *testing.T) {
		rl := auth.NewRateLimiter(auth.RateLimitConfig{MaxAttempts: 2, LockoutDuration: time.Minute})
		t.Cleanup(rl.Stop)
		env := setupTestEnv(t, withRateLimiter(rl))

		bad := entities.LoginRequest{Email: fixtures.DemoEmail, Password: "wrong"}

		w := env.do(t, http.MethodPost, "/api/auth/login", bad)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = env.do(t, http.MethodPost, "/api/auth/login", bad)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "60", w.Header().Get("Retry-After"))

		// Even the right password is refused during the lockout
		w = env.do(t, http.MethodPost, "/api/auth/login", entities.LoginRequest{
			Email:    fixtures.DemoEmail,
			Password: "demo123",
		})
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "rate_limited", decode[ErrorResponse](t, w).Code)
	})
}

func TestAuthController_Register(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/register", entities.RegisterRequest{
		Email:     "new@example.com",
		Password:  "secret1",
		Username:  "newreader",
		FirstName: "New",
		LastName:  "Reader",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[entities.AuthResponse](t, w)
	assert.Equal(t, "newreader", resp.User.Username)
	assert.Equal(t, "new-user-access-token", resp.Tokens.AccessToken)
	assert.Zero(t, resp.User.ReadingStats)

	w = env.do(t, http.MethodGet, "/api/notifications", nil)
	assert.Equal(t, "Welcome to BookCircle, New!", decode[map[string]string](t, w)["message"])
}

func TestAuthController_Register_Validation(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/register", entities.RegisterRequest{
		Email:    "new@example.com",
		Password: "123",
		Username: "ab",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[struct {
		Details map[string]string `json:"details"`
	}](t, w)
	assert.Equal(t, "must be at least 6 characters", resp.Details["password"])
	assert.Contains(t, resp.Details, "username")
	assert.Contains(t, resp.Details, "firstName")
	assert.False(t, env.sessions.IsAuthenticated())
}

func TestAuthController_Logout(t *testing.T) {
	env := setupTestEnv(t)
	env.login(t)

	w := env.do(t, http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, env.sessions.IsAuthenticated())

	w = env.do(t, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/api/notifications", nil)
	assert.Equal(t, "You have been signed out.", decode[map[string]string](t, w)["message"])
}

func TestAuthController_Me(t *testing.T) {
	env := setupTestEnv(t)
	env.login(t)

	w := env.do(t, http.MethodGet, "/api/auth/me", nil)

	require.Equal(t, http.StatusOK, w.Code)
	user := decode[entities.User](t, w)
	assert.Equal(t, fixtures.DemoUsername, user.Username)
	assert.Equal(t, 47, user.ReadingStats.BooksRead)
}

func TestAuthController_UpdateMe(t *testing.T) {
	t.Run("updates profile fields", func(t *testing.T) {
		env := setupTestEnv(t)
		env.login(t)

		w := env.do(t, http.MethodPut, "/api/auth/me", entities.UpdateProfileRequest{
			Username:       "night_reader",
			FirstName:      "Night",
			LastName:       "Owl",
			Bio:            "Reads after dark",
			FavoriteGenres: []string{"Thriller"},
		})

		require.Equal(t, http.StatusOK, w.Code)
		user := decode[entities.User](t, w)
		assert.Equal(t, "night_reader", user.Username)
		assert.Equal(t, []string{"Thriller"}, user.FavoriteGenres)
		assert.Equal(t, fixtures.DemoUserID, user.ID)
		assert.Equal(t, 47, user.ReadingStats.BooksRead)
		assert.Equal(t, "night_reader", env.sessions.CurrentUser().Username)
	})

	t.Run("keeps genres when none sent", func(t *testing.T) {
		env := setupTestEnv(t)
		env.login(t)

		w := env.do(t, http.MethodPut, "/api/auth/me", entities.UpdateProfileRequest{
			Username:  "night_reader",
			FirstName: "Night",
			LastName:  "Owl",
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"Fiction", "Mystery", "Science Fiction"}, decode[entities.User](t, w).FavoriteGenres)
	})

	t.Run("rejects bad avatar URL", func(t *testing.T) {
		env := setupTestEnv(t)
		env.login(t)

		w := env.do(t, http.MethodPut, "/api/auth/me", entities.UpdateProfileRequest{
			Username:  "night_reader",
			FirstName: "Night",
			LastName:  "Owl",
			AvatarURL: "not a url",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNotificationsController(t *testing.T) {
	env := setupTestEnv(t)
	env.login(t)

	w := env.do(t, http.MethodGet, "/api/notifications", nil)
	assert.Equal(t, "Welcome back, Demo!", decode[map[string]string](t, w)["message"])

	w = env.do(t, http.MethodGet, "/api/notifications", nil)
	assert.Equal(t, "", decode[map[string]string](t, w)["message"])
}
