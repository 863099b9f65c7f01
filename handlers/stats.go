package handlers

import (
	"context"
	"net/http"

	"sensor-readings-api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StatsStore interface {
	Stats(ctx context.Context) (*models.Stats, error)
}

type StatsHandler struct {
	store  StatsStore
	logger *zap.Logger
}

func NewStatsHandler(store StatsStore, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{store: store, logger: logger}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.store.Stats(c.Request.Context())
	if err != nil {
		storeError(c, h.logger, "stats", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
