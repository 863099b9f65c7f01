package router

import (
	"sensor-readings-api/config"
	"sensor-readings-api/handlers"
	"sensor-readings-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// New wires the read API and /metrics onto a gin engine.
func New(cfg *config.Config, logger *zap.Logger, readings *handlers.ReadingsHandler, stats *handlers.StatsHandler, health *handlers.HealthHandler) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(logger),
		middleware.Metrics(),
		middleware.SetupCORS(cfg.CORS),
	)

	api := r.Group("/api")
	{
		api.GET("/readings", readings.List)
		api.GET("/readings/latest", readings.Latest)
		api.GET("/readings/range", readings.Range)
		api.GET("/readings/filter", readings.Filter)
		api.GET("/stats", stats.GetStats)
		api.GET("/health", health.Check)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
