// Package response writes the uniform error body used by every endpoint.
package response

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/platform/apperror"
)

// ErrorBody is the JSON shape shared by all error responses.
type ErrorBody struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	ErrorCode string `json:"error_code,omitempty"`
	Details   any    `json:"details,omitempty"`
}

// InternalDetails describes an unexpected failure. Only rendered outside release mode.
type InternalDetails struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Error aborts the request with the body derived from err.
func Error(c *gin.Context, err error) {
	appErr := apperror.From(err)

	body := ErrorBody{
		Success:   false,
		Message:   appErr.Message,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		ErrorCode: appErr.Code,
		Details:   appErr.Details,
	}

	if appErr.Status >= http.StatusInternalServerError {
		slog.Error("request failed", "error", err, "method", c.Request.Method, "path", c.Request.URL.Path)
		if gin.Mode() != gin.ReleaseMode && body.Details == nil {
			if cause := errors.Unwrap(appErr); cause != nil {
				body.Details = InternalDetails{Name: errorName(cause), Message: cause.Error()}
			}
		}
	}

	c.AbortWithStatusJSON(appErr.Status, body)
}

func errorName(err error) string {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "Error"
}
