package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tetherhq/tether/internal/search"
	"github.com/tetherhq/tether/pkg/logging"
	"github.com/tetherhq/tether/pkg/telemetry"
)

// SearchAPI provides the search endpoint
type SearchAPI struct {
	facade *search.Facade
	logger *zap.Logger
}

// NewSearchAPI creates a new search API
func NewSearchAPI(facade *search.Facade) *SearchAPI {
	return &SearchAPI{
		facade: facade,
		logger: logging.GetLogger().With(zap.String("component", "search-api")),
	}
}

// SearchRequest is the body of POST /api/search
type SearchRequest struct {
	Query  string `json:"query"`
	Mode   string `json:"mode"`
	PostID int64  `json:"postId"`
}

// Search handles POST /api/search
func (s *SearchAPI) Search(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "search.dispatch")
	defer span.End()

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid search request")
		return
	}

	mode, err := search.ParseMode(req.Mode)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	results, err := s.facade.Search(ctx, search.Request{
		Query:  req.Query,
		Mode:   mode,
		PostID: req.PostID,
	})
	if err != nil {
		serverError(c, s.logger, "search failed", err)
		return
	}

	c.JSON(http.StatusOK, results)
}
