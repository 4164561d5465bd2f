package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"story-platform/internal/domain"
	"story-platform/internal/logger"
	"story-platform/internal/middleware"
	"story-platform/internal/validator"
)

// respondError maps service errors onto HTTP status codes: validation
// failures are client input errors, ErrNotFound is 404, and anything else
// (a failed collection save, in practice) is a server error.
func respondError(c *gin.Context, err error) {
	switch {
	case validator.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
