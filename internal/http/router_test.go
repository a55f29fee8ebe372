package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookcircle/internal/auth"
	"github.com/mrlokans/bookcircle/internal/config"
	"github.com/mrlokans/bookcircle/internal/database"
	"github.com/mrlokans/bookcircle/internal/database/storage"
	"github.com/mrlokans/bookcircle/internal/entities"
	"github.com/mrlokans/bookcircle/internal/fixtures"
	"github.com/mrlokans/bookcircle/internal/library"
	"github.com/mrlokans/bookcircle/internal/localstore"
	"github.com/mrlokans/bookcircle/internal/reviews"
	"github.com/mrlokans/bookcircle/internal/session"
)

type fakeQueue struct {
	enqueuedBy []string
	status     backlite.TaskStatus
}

func (q *fakeQueue) EnqueueLibraryExport(_ context.Context, requestedBy string) (string, error) {
	q.enqueuedBy = append(q.enqueuedBy, requestedBy)
	return "task-1", nil
}

func (q *fakeQueue) Status(_ context.Context, _ string) (backlite.TaskStatus, error) {
	return q.status, nil
}

type testEnv struct {
	db       *database.Database
	router   *gin.Engine
	sessions *session.Store
	library  *library.Store
	reviews  *reviews.Store
	cookies  map[string]*http.Cookie
}

type envOption func(*RouterConfig)

func withTaskQueue(q TaskQueue) envOption {
	return func(cfg *RouterConfig) { cfg.TaskQueue = q }
}

func withRateLimiter(rl *auth.RateLimiter) envOption {
	return func(cfg *RouterConfig) { cfg.RateLimiter = rl }
}

func setupTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "bookcircle.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ls := localstore.New(storage.NewRepository(db.DB))

	sessions, err := session.NewStore(ls, session.Config{
		DemoEmail:    fixtures.DemoEmail,
		DemoPassword: "demo123",
		BcryptCost:   4,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	sm, err := auth.NewSessionManager(sqlDB, config.Auth{SessionLifetime: time.Hour})
	require.NoError(t, err)

	env := &testEnv{
		db:       db,
		sessions: sessions,
		library:  library.NewStore(ls, fixtures.Books(), library.Config{UserID: fixtures.DemoUserID}),
		reviews:  reviews.NewStore(reviews.Config{}),
		cookies:  make(map[string]*http.Cookie),
	}

	cfg := RouterConfig{
		Sessions:       env.sessions,
		Library:        env.library,
		Reviews:        env.reviews,
		Database:       db,
		SessionManager: sm,
		Version:        "test",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	env.router = NewRouter(cfg)
	return env
}

// do sends a request, carrying cookies from earlier responses like a browser.
func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range e.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		e.cookies[c.Name] = c
	}
	return w
}

func (e *testEnv) login(t *testing.T) {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/auth/login", entities.LoginRequest{
		Email:    fixtures.DemoEmail,
		Password: "demo123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestRouter_Ping(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", decode[map[string]string](t, w)["message"])
}

func TestRouter_SecurityHeaders(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/books", nil)

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestRouter_ProtectedRoutesRequireAuth(t *testing.T) {
	env := setupTestEnv(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPut, "/api/auth/me"},
		{http.MethodPost, "/api/books/1/reviews"},
		{http.MethodGet, "/api/library"},
		{http.MethodGet, "/api/library/counts"},
		{http.MethodPost, "/api/library"},
		{http.MethodPatch, "/api/library/ub-1"},
		{http.MethodDelete, "/api/library/ub-1"},
		{http.MethodPost, "/api/library/export"},
		{http.MethodPut, "/api/reviews/1"},
		{http.MethodDelete, "/api/reviews/1"},
		{http.MethodPost, "/api/reviews/1/like"},
		{http.MethodGet, "/api/dashboard"},
		{http.MethodGet, "/api/stream/library"},
		{http.MethodGet, "/api/stream/session"},
	}

	for _, r := range routes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			w := env.do(t, r.method, r.path, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "unauthorized", decode[ErrorResponse](t, w).Code)
		})
	}
}

func TestRouter_BearerToken(t *testing.T) {
	env := setupTestEnv(t)
	env.login(t)

	t.Run("matching token is accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer demo-access-token")
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRouter_TaskRoutesOnlyWithQueue(t *testing.T) {
	t.Run("absent without queue", func(t *testing.T) {
		env := setupTestEnv(t)
		w := env.do(t, http.MethodGet, "/api/tasks/task-1", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("reports status with queue", func(t *testing.T) {
		queue := &fakeQueue{status: backlite.TaskStatusRunning}
		env := setupTestEnv(t, withTaskQueue(queue))

		w := env.do(t, http.MethodGet, "/api/tasks/task-1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decode[map[string]string](t, w)
		assert.Equal(t, "task-1", body["id"])
		assert.Equal(t, "running", body["status"])
	})

	t.Run("unknown task is 404", func(t *testing.T) {
		queue := &fakeQueue{status: backlite.TaskStatusNotFound}
		env := setupTestEnv(t, withTaskQueue(queue))

		w := env.do(t, http.MethodGet, "/api/tasks/missing", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRouter_DemoStatus(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/demo/status", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[DemoStatusResponse](t, w).ResetEnabled)
}
