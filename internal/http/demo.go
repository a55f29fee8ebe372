package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DemoController reports on the scheduled demo data reset.
type DemoController struct {
	reset DemoResetStatus
}

// NewDemoController creates a new demo controller. reset may be nil.
func NewDemoController(reset DemoResetStatus) *DemoController {
	return &DemoController{reset: reset}
}

// DemoStatusResponse contains demo reset status information.
type DemoStatusResponse struct {
	ResetEnabled bool       `json:"resetEnabled"`
	LastReset    *time.Time `json:"lastReset,omitempty"`
	NextReset    *time.Time `json:"nextReset,omitempty"`
	Message      string     `json:"message"`
}

// GetStatus handles GET /api/demo/status
func (dc *DemoController) GetStatus(c *gin.Context) {
	if dc.reset == nil || !dc.reset.IsRunning() {
		c.JSON(http.StatusOK, DemoStatusResponse{
			ResetEnabled: false,
			Message:      "Demo data is not reset automatically",
		})
		return
	}

	resp := DemoStatusResponse{
		ResetEnabled: true,
		NextReset:    dc.reset.NextRun(),
		Message:      "Reviews and the library are restored to demo data on a schedule",
	}
	if last := dc.reset.LastRun(); !last.IsZero() {
		resp.LastReset = &last
	}
	c.JSON(http.StatusOK, resp)
}
