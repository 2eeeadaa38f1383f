package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tetherhq/tether/internal/db"
	"github.com/tetherhq/tether/pkg/logging"
	"github.com/tetherhq/tether/pkg/telemetry"
)

const feedLimit = 20

// PostsAPI provides post submission and feed methods
type PostsAPI struct {
	posts  *db.PostRepository
	logger *zap.Logger
}

// NewPostsAPI creates a new posts API
func NewPostsAPI(posts *db.PostRepository) *PostsAPI {
	return &PostsAPI{
		posts:  posts,
		logger: logging.GetLogger().With(zap.String("component", "posts-api")),
	}
}

// SubmitRequest is the body of POST /api/posts
type SubmitRequest struct {
	User      string   `json:"user"`
	Content   string   `json:"content" binding:"required"`
	MediaPath string   `json:"media_path"`
	Tags      []string `json:"tags"`
}

// Submit handles POST /api/posts
func (p *PostsAPI) Submit(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "posts.submit")
	defer span.End()

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "content is required")
		return
	}

	postID, err := p.posts.Submit(ctx, db.Submission{
		User:      req.User,
		Content:   req.Content,
		MediaPath: req.MediaPath,
		Tags:      req.Tags,
	})
	if err != nil {
		serverError(c, p.logger, "failed to submit post", err)
		return
	}

	p.logger.Debug("Post submitted",
		zap.Int64("post_id", postID),
		zap.Int("tags", len(req.Tags)))

	c.JSON(http.StatusOK, gin.H{"success": true, "post_id": postID})
}

// Feed handles GET /api/posts. An optional before id pages through
// older posts.
func (p *PostsAPI) Feed(c *gin.Context) {
	var before int64
	if raw := c.Query("before"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			badRequest(c, "before must be a positive post id")
			return
		}
		before = parsed
	}

	posts, err := p.posts.Feed(c.Request.Context(), feedLimit, before)
	if err != nil {
		serverError(c, p.logger, "failed to load feed", err)
		return
	}

	c.JSON(http.StatusOK, posts)
}
