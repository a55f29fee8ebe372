// Package auth guards the HTTP API.
//
// The signed-in account itself lives in the session store; this package
// only decides whether a request may act on it. Requests prove themselves
// either with a Bearer token equal to the stored access token or with a
// session cookie created at login.
//
// # Configuration
//
//	AUTH_SESSION_LIFETIME=24h        # Cookie session duration
//	AUTH_SECURE_COOKIES=true         # HTTPS-only cookies
//	AUTH_CSRF_SECRET=<32 bytes>      # Enables CSRF protection for cookie clients
//	AUTH_MAX_LOGIN_ATTEMPTS=5        # Failed logins before lockout
//
// # Usage
//
//	sm, _ := auth.NewSessionManager(sqlDB, cfg.Auth)
//	mw := auth.NewMiddleware(sessionStore, sm)
//	router.Use(sm.SessionLoadSave(), mw.Handler())
//	api.POST("/library", mw.RequireAuth(), handler)
package auth
