package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tetherhq/tether/internal/cache"
	"github.com/tetherhq/tether/internal/db"
	"github.com/tetherhq/tether/internal/media"
	"github.com/tetherhq/tether/internal/presence"
	"github.com/tetherhq/tether/internal/search"
	"github.com/tetherhq/tether/pkg/logging"
)

// Router sets up API routes
type Router struct {
	db      *db.DB
	cache   *cache.Cache
	tracker *presence.Tracker
	storage *media.Storage
	logger  *zap.Logger
}

// NewRouter creates a new API router
func NewRouter(database *db.DB, redisCache *cache.Cache, tracker *presence.Tracker, storage *media.Storage) *Router {
	return &Router{
		db:      database,
		cache:   redisCache,
		tracker: tracker,
		storage: storage,
		logger:  logging.GetLogger().With(zap.String("component", "api-router")),
	}
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	repo := db.NewRepository(r.db.DB)
	postRepo := db.NewPostRepository(repo)
	tagRepo := db.NewTagRepository(repo)

	posts := NewPostsAPI(postRepo)
	tags := NewTagsAPI(tagRepo, r.cache)
	searchAPI := NewSearchAPI(search.NewFacade(postRepo))
	presenceAPI := NewPresenceAPI(r.tracker)
	upload := NewUploadAPI(r.storage)

	// Health check endpoints
	engine.GET("/health", r.healthHandler)
	engine.GET("/.well-known/healthcheck.json", r.healthHandler)

	api := engine.Group("/api")
	{
		api.GET("/posts", posts.Feed)
		api.POST("/posts", posts.Submit)
		api.POST("/search", searchAPI.Search)
		api.GET("/fresh-tags", tags.Fresh)
		api.GET("/tags", tags.All)
		api.GET("/tag-cloud", tags.Cloud)
		api.GET("/related-tags", tags.Related)
		api.POST("/presence", presenceAPI.Touch)
		api.GET("/presence", presenceAPI.List)
		api.POST("/upload", upload.Upload)
	}

	// Uploaded media is served straight from disk
	engine.Static("/uploads", r.storage.Dir())
}

func (r *Router) healthHandler(c *gin.Context) {
	if err := r.db.Health(c.Request.Context()); err != nil {
		r.logger.Error("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unavailable",
			"service": "tether-api",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": "tether-api",
	})
}
