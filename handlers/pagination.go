package handlers

import (
	"sensor-readings-api/models"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 100
)

type PaginationParams struct {
	Page  int
	Limit int
}

func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePagination reads page and limit. Values that are not positive
// integers fall back to the defaults rather than failing the request.
func ParsePagination(c *gin.Context) PaginationParams {
	return PaginationParams{
		Page:  queryPositiveInt(c, "page", DefaultPage),
		Limit: queryPositiveInt(c, "limit", DefaultLimit),
	}
}

func NewPagination(p PaginationParams, total int64) models.Pagination {
	limit := int64(p.Limit)
	totalPages := int((total + limit - 1) / limit)
	return models.Pagination{
		CurrentPage:  p.Page,
		TotalPages:   totalPages,
		TotalRecords: total,
		HasNextPage:  p.Page < totalPages,
		HasPrevPage:  p.Page > 1,
	}
}
