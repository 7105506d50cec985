package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/users/domain"
)

// writeError converts a failure from the usecase layer into an HTTP response
// with a plain-text body.
//
// Conflict and NotFound both map to 400 rather than 409/404. The upstream
// system never distinguished them and clients observe the status code, so the
// non-distinction is kept on purpose.
func writeError(c *gin.Context, err error) {
	var derr *domain.Error
	if errors.As(err, &derr) {
		c.String(http.StatusBadRequest, derr.Message)
		return
	}
	slog.Error("request failed", "error", err, "method", c.Request.Method, "path", c.FullPath())
	c.String(http.StatusInternalServerError, "internal server error")
}
