// Package handlers provides HTTP request handlers.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"auditledger/internal/core/apperror"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// Error registers error on Gin context and aborts request.
// Actual JSON response is produced by middleware.ErrorHandler.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ParseYearQuery parses the fiscal start-year query parameter.
// Missing or empty means "current fiscal year" (zero); anything present
// must be a 4-digit year.
func (h *BaseHandler) ParseYearQuery(c *gin.Context, key string) (int, bool) {
	val := c.Query(key)
	if val == "" {
		return 0, true
	}
	year, err := strconv.Atoi(val)
	if err != nil || year < 1000 || year > 9999 {
		h.Error(c, apperror.NewValidation("invalid fiscal year").
			WithDetail("param", key).
			WithDetail("value", val))
		return 0, false
	}
	return year, true
}
