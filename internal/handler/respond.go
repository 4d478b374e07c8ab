package handler

import (
	"ClipHub/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto the HTTP surface. Unauthorized
// and Conflict deliberately surface as 400 to match the public API.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrUnauthorized),
		errors.Is(err, service.ErrConflict):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
