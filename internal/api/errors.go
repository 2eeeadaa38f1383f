package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// badRequest rejects malformed client input.
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// serverError surfaces a storage or internal fault for one operation.
// The underlying error is logged, never sent to the client.
func serverError(c *gin.Context, logger *zap.Logger, message string, err error) {
	logger.Error(message, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
