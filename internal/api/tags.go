package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tetherhq/tether/internal/cache"
	"github.com/tetherhq/tether/internal/db"
	"github.com/tetherhq/tether/internal/models"
	"github.com/tetherhq/tether/pkg/logging"
)

// tagCacheTTL bounds staleness of the cached tag cloud and related-tags
// reads. Submissions do not invalidate; the data is advisory.
const tagCacheTTL = 30 * time.Second

// TagsAPI provides tag query methods
type TagsAPI struct {
	tags   *db.TagRepository
	cache  *cache.Cache
	logger *zap.Logger
}

// NewTagsAPI creates a new tags API
func NewTagsAPI(tags *db.TagRepository, redisCache *cache.Cache) *TagsAPI {
	return &TagsAPI{
		tags:   tags,
		cache:  redisCache,
		logger: logging.GetLogger().With(zap.String("component", "tags-api")),
	}
}

// Fresh handles GET /api/fresh-tags
func (t *TagsAPI) Fresh(c *gin.Context) {
	names, err := t.tags.FreshTags(c.Request.Context())
	if err != nil {
		serverError(c, t.logger, "failed to load fresh tags", err)
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, names)
}

// All handles GET /api/tags
func (t *TagsAPI) All(c *gin.Context) {
	names, err := t.tags.AllTags(c.Request.Context())
	if err != nil {
		serverError(c, t.logger, "failed to load tags", err)
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, names)
}

// Cloud handles GET /api/tag-cloud
func (t *TagsAPI) Cloud(c *gin.Context) {
	cacheKey := cache.HashKey("tag_cloud")
	if t.cache != nil {
		var cached []models.TagCount
		if err := t.cache.GetJSON(cacheKey, &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	cloud, err := t.tags.TagCloud(c.Request.Context())
	if err != nil {
		serverError(c, t.logger, "failed to load tag cloud", err)
		return
	}
	if cloud == nil {
		cloud = []models.TagCount{}
	}

	if t.cache != nil {
		if err := t.cache.SetJSON(cacheKey, cloud, tagCacheTTL); err != nil {
			t.logger.Warn("Failed to cache tag cloud", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, cloud)
}

// Related handles GET /api/related-tags?tag=name
func (t *TagsAPI) Related(c *gin.Context) {
	tag := c.Query("tag")
	if tag == "" {
		c.JSON(http.StatusOK, []string{})
		return
	}

	cacheKey := cache.HashKey("related_tags", tag)
	if t.cache != nil {
		var cached []string
		if err := t.cache.GetJSON(cacheKey, &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	related, err := t.tags.RelatedTags(c.Request.Context(), tag)
	if err != nil {
		serverError(c, t.logger, "failed to load related tags", err)
		return
	}
	if related == nil {
		related = []string{}
	}

	if t.cache != nil {
		if err := t.cache.SetJSON(cacheKey, related, tagCacheTTL); err != nil {
			t.logger.Warn("Failed to cache related tags", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, related)
}
