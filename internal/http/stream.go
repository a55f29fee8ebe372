package http

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcircle/internal/observable"
)

const heartbeatInterval = 30 * time.Second

// StreamEvent is the payload of a snapshot event.
type StreamEvent struct {
	Version uint64 `json:"version"`
	Data    any    `json:"data"`
}

// StreamController pushes store snapshots as Server-Sent Events. Each
// stream starts with the current value and then sends every new version.
type StreamController struct {
	sessions SessionService
	library  LibraryService
	reviews  ReviewService
}

func NewStreamController(sessions SessionService, lib LibraryService, rev ReviewService) *StreamController {
	return &StreamController{sessions: sessions, library: lib, reviews: rev}
}

// Library handles GET /api/stream/library
func (sc *StreamController) Library(c *gin.Context) {
	streamSubject(c, "library", sc.library.UserBooksSubject())
}

// Reviews handles GET /api/stream/reviews
func (sc *StreamController) Reviews(c *gin.Context) {
	streamSubject(c, "reviews", sc.reviews.ReviewsSubject())
}

// Session handles GET /api/stream/session
func (sc *StreamController) Session(c *gin.Context) {
	streamSubject(c, "session", sc.sessions.UserSubject())
}

// Auth handles GET /api/stream/auth
func (sc *StreamController) Auth(c *gin.Context) {
	streamSubject(c, "auth", sc.sessions.AuthSubject())
}

// Books handles GET /api/stream/books
func (sc *StreamController) Books(c *gin.Context) {
	streamSubject(c, "books", sc.library.BooksSubject())
}

func streamSubject[T any](c *gin.Context, event string, subject *observable.Subject[T]) {
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // Disable nginx buffering

	snapshots := subject.Channel(c.Request.Context())

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case snap, ok := <-snapshots:
			if !ok {
				return false
			}
			c.SSEvent(event, StreamEvent{Version: snap.Version, Data: snap.Value})
		case t := <-heartbeat.C:
			c.SSEvent("heartbeat", gin.H{"time": t.UTC().Format(time.RFC3339)})
		}
		return true
	})
}
