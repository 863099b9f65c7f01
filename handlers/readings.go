package handlers

import (
	"context"
	"errors"
	"net/http"

	"sensor-readings-api/database"
	"sensor-readings-api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ReadingStore is the read side of sensor_readings used by the handlers.
type ReadingStore interface {
	List(ctx context.Context, limit, offset int) ([]models.Reading, error)
	Count(ctx context.Context) (int64, error)
	Latest(ctx context.Context) (models.Reading, error)
	Range(ctx context.Context, start, end string) ([]models.Reading, error)
	Filter(ctx context.Context, f database.ReadingFilter) ([]models.Reading, error)
}

type ReadingsHandler struct {
	store  ReadingStore
	logger *zap.Logger
}

func NewReadingsHandler(store ReadingStore, logger *zap.Logger) *ReadingsHandler {
	return &ReadingsHandler{store: store, logger: logger}
}

// List serves one page of readings, newest first, plus position metadata.
// The page and the total count are fetched concurrently.
func (h *ReadingsHandler) List(c *gin.Context) {
	p := ParsePagination(c)

	var (
		rows  []models.Reading
		total int64
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		rows, err = h.store.List(ctx, p.Limit, p.Offset())
		return err
	})
	g.Go(func() error {
		var err error
		total, err = h.store.Count(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		storeError(c, h.logger, "list", err)
		return
	}

	c.JSON(http.StatusOK, models.PagedReadings{
		Data:       rows,
		Pagination: NewPagination(p, total),
	})
}

// Latest serves the newest reading as a bare object.
func (h *ReadingsHandler) Latest(c *gin.Context) {
	reading, err := h.store.Latest(c.Request.Context())
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No readings found"})
		return
	}
	if err != nil {
		storeError(c, h.logger, "latest", err)
		return
	}

	c.JSON(http.StatusOK, reading)
}

func (h *ReadingsHandler) Range(c *gin.Context) {
	start := c.Query("startDate")
	end := c.Query("endDate")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate and endDate are required"})
		return
	}

	rows, err := h.store.Range(c.Request.Context(), start, end)
	if err != nil {
		storeError(c, h.logger, "range", err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *ReadingsHandler) Filter(c *gin.Context) {
	f := database.ReadingFilter{
		MinPressure: queryFloat(c, "minPressure"),
		MaxPressure: queryFloat(c, "maxPressure"),
		MinTemp:     queryFloat(c, "minTemp"),
		MaxTemp:     queryFloat(c, "maxTemp"),
		Limit:       queryPositiveInt(c, "limit", DefaultLimit),
	}

	rows, err := h.store.Filter(c.Request.Context(), f)
	if err != nil {
		storeError(c, h.logger, "filter", err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
