package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tetherhq/tether/internal/presence"
)

func presenceRouter(tracker *presence.Tracker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	api := NewPresenceAPI(tracker)
	engine.POST("/api/presence", api.Touch)
	engine.GET("/api/presence", api.List)
	return engine
}

func TestPresenceTouchThenList(t *testing.T) {
	engine := presenceRouter(presence.NewTracker(5 * time.Minute))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/presence", strings.NewReader(`{"user":"alice"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("touch status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/presence", nil))

	var resp struct {
		Users []string `json:"users"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse list response: %v", err)
	}
	if len(resp.Users) != 1 || resp.Users[0] != "alice" {
		t.Errorf("users = %v, want [alice]", resp.Users)
	}
}

func TestPresenceTouchRequiresUser(t *testing.T) {
	engine := presenceRouter(presence.NewTracker(5 * time.Minute))

	tests := []struct {
		name string
		body string
	}{
		{name: "missing user", body: `{}`},
		{name: "empty user", body: `{"user":""}`},
		{name: "not json", body: `user=alice`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/presence", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			engine.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}
