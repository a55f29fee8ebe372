package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcircle/internal/entities"
)

type fakeState struct {
	user  *entities.User
	token string
}

func (f *fakeState) AccessToken() string         { return f.token }
func (f *fakeState) IsAuthenticated() bool       { return f.user != nil }
func (f *fakeState) CurrentUser() *entities.User { return f.user }

func signedIn() *fakeState {
	return &fakeState{user: demoUser(), token: "demo-access-token"}
}

func newProtectedRouter(m *Middleware) *gin.Engine {
	router := gin.New()
	router.Use(m.Handler())
	router.GET("/api/auth/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":   GetUserID(c),
			"username":  GetUsername(c),
			"auth_type": GetAuthType(c),
		})
	})
	router.POST("/api/library", m.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return router
}

func TestMiddleware_RequireAuth(t *testing.T) {
	tests := []struct {
		name   string
		state  *fakeState
		header string
		want   int
	}{
		{"signed out", &fakeState{}, "", http.StatusUnauthorized},
		{"signed out with token", &fakeState{}, "Bearer demo-access-token", http.StatusUnauthorized},
		{"signed in without header", signedIn(), "", http.StatusCreated},
		{"signed in with matching token", signedIn(), "Bearer demo-access-token", http.StatusCreated},
		{"signed in with wrong token", signedIn(), "Bearer other-token", http.StatusUnauthorized},
		{"signed in with malformed header", signedIn(), "demo-access-token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newProtectedRouter(NewMiddleware(tt.state, nil))

			req := httptest.NewRequest(http.MethodPost, "/api/library", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, rr.Code)
			}
			if tt.want == http.StatusUnauthorized && rr.Body.String() != `{"code":"unauthorized","error":"authentication required"}` {
				t.Errorf("Unexpected error body: %s", rr.Body.String())
			}
		})
	}
}

func TestMiddleware_Handler_Bearer(t *testing.T) {
	router := newProtectedRouter(NewMiddleware(signedIn(), nil))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer demo-access-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	expected := `{"auth_type":"bearer","user_id":"1","username":"bookworm_demo"}`
	if rr.Body.String() != expected {
		t.Errorf("Expected %s, got %s", expected, rr.Body.String())
	}
}

func TestMiddleware_Handler_Anonymous(t *testing.T) {
	tests := []struct {
		name   string
		state  *fakeState
		header string
	}{
		{"signed out", &fakeState{}, "Bearer demo-access-token"},
		{"no credentials", signedIn(), ""},
		{"wrong token", signedIn(), "Bearer nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newProtectedRouter(NewMiddleware(tt.state, nil))

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			expected := `{"auth_type":"none","user_id":"","username":""}`
			if rr.Body.String() != expected {
				t.Errorf("Expected %s, got %s", expected, rr.Body.String())
			}
		})
	}
}

func TestMiddleware_Handler_Session(t *testing.T) {
	sm := setupSessionManager(t, false)
	m := NewMiddleware(signedIn(), sm)

	router := gin.New()
	router.Use(sm.SessionLoadSave(), m.Handler())
	router.POST("/login", func(c *gin.Context) {
		if err := sm.CreateSession(c.Request, demoUser()); err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})
	router.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, string(GetAuthType(c))+":"+GetUserID(c))
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/login", nil))
	cookies := rr.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("Expected session cookie after login")
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Body.String() != "session:1" {
		t.Errorf("Expected session:1, got %s", rr.Body.String())
	}
}

func TestGetters_NoAuth(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if GetUserID(c) != "" {
		t.Error("Expected empty user ID")
	}
	if GetUsername(c) != "" {
		t.Error("Expected empty username")
	}
	if GetAuthType(c) != AuthTypeNone {
		t.Error("Expected AuthTypeNone")
	}
}
