package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookcircle/internal/auth"
	"github.com/mrlokans/bookcircle/internal/covers"
	"github.com/mrlokans/bookcircle/internal/database/storage"
	"github.com/mrlokans/bookcircle/internal/exporters"
	"github.com/mrlokans/bookcircle/internal/http"
	"github.com/mrlokans/bookcircle/internal/library"
	"github.com/mrlokans/bookcircle/internal/localstore"
	"github.com/mrlokans/bookcircle/internal/reviews"
	"github.com/mrlokans/bookcircle/internal/scheduler"
	"github.com/mrlokans/bookcircle/internal/session"
	"github.com/mrlokans/bookcircle/internal/tasks"
)

// =============================================================================
// Stores
// =============================================================================

var _ http.SessionService = (*session.Store)(nil)
var _ http.LibraryService = (*library.Store)(nil)
var _ http.ReviewService = (*reviews.Store)(nil)

var _ http.CoverCache = (*covers.Cache)(nil)

// Local storage backend
var _ localstore.Backend = (*storage.Repository)(nil)

// =============================================================================
// Authentication
// =============================================================================

var _ auth.SessionState = (*session.Store)(nil)
var _ auth.TokenSource = (*session.Store)(nil)

// =============================================================================
// Background Work
// =============================================================================

var _ http.TaskQueue = (*tasks.Client)(nil)
var _ tasks.LibrarySource = (*library.Store)(nil)
var _ exporters.LibraryExporter = (*exporters.FileExporter)(nil)

var _ http.DemoResetStatus = (*scheduler.DemoResetScheduler)(nil)
var _ scheduler.ReviewResetter = (*reviews.Store)(nil)
var _ scheduler.LibraryResetter = (*library.Store)(nil)
