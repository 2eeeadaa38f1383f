package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tetherhq/tether/internal/media"
	"github.com/tetherhq/tether/pkg/logging"
)

// UploadAPI provides the media upload endpoint
type UploadAPI struct {
	storage *media.Storage
	logger  *zap.Logger
}

// NewUploadAPI creates a new upload API
func NewUploadAPI(storage *media.Storage) *UploadAPI {
	return &UploadAPI{
		storage: storage,
		logger:  logging.GetLogger().With(zap.String("component", "upload-api")),
	}
}

// Upload handles POST /api/upload. The file arrives as multipart form
// field "file"; the response path is what clients pass back as media_path
// on submission.
func (u *UploadAPI) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "file is required")
		return
	}

	src, err := header.Open()
	if err != nil {
		serverError(c, u.logger, "upload failed", err)
		return
	}
	defer src.Close()

	path, err := u.storage.Save(src, header.Filename)
	if err != nil {
		serverError(c, u.logger, "upload failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"path": path})
}
