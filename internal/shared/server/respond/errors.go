package respond

import (
	"github.com/gin-gonic/gin"

	"legalease-backend/internal/shared/telemetry"
)

// Error sends a flat error response: {"error": message, ...extra}.
// Every endpoint uses this shape; extra carries endpoint-specific
// diagnostic fields such as the raw model output on parse failures.
func Error(c *gin.Context, status int, message string, extra map[string]any) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	telemetry.Error("http.error", fields)

	body := gin.H{"error": message}
	for k, v := range extra {
		body[k] = v
	}
	c.AbortWithStatusJSON(status, body)
}
