package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func queryPositiveInt(c *gin.Context, key string, fallback int) int {
	if s := c.Query(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

// queryFloat returns nil when key is absent or not a number.
func queryFloat(c *gin.Context, key string) *float64 {
	s := c.Query(key)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
