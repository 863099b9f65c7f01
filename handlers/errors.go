package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const internalError = "Internal server error"

// storeError logs the cause and answers with a body that reveals none of it.
func storeError(c *gin.Context, logger *zap.Logger, op string, err error) {
	logger.Error("store query failed",
		zap.String("op", op),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": internalError})
}
