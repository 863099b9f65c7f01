package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness without touching the store.
type HealthHandler struct {
	started time.Time
	now     func() time.Time
}

func NewHealthHandler(started time.Time) *HealthHandler {
	return &HealthHandler{started: started, now: time.Now}
}

func (h *HealthHandler) Check(c *gin.Context) {
	now := h.now()
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": now.UTC().Format(time.RFC3339Nano),
		"uptime":    now.Sub(h.started).Seconds(),
	})
}
