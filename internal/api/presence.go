package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tetherhq/tether/internal/presence"
)

// PresenceAPI provides presence touch/list methods
type PresenceAPI struct {
	tracker *presence.Tracker
}

// NewPresenceAPI creates a new presence API
func NewPresenceAPI(tracker *presence.Tracker) *PresenceAPI {
	return &PresenceAPI{tracker: tracker}
}

// TouchRequest is the body of POST /api/presence
type TouchRequest struct {
	User string `json:"user" binding:"required"`
}

// Touch handles POST /api/presence
func (p *PresenceAPI) Touch(c *gin.Context) {
	var req TouchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "user is required")
		return
	}

	p.tracker.Touch(req.User)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// List handles GET /api/presence
func (p *PresenceAPI) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"users": p.tracker.Active()})
}
