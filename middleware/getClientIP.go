package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP prefers proxy headers, taking the first hop of X-Forwarded-For.
func getClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if first, _, _ := strings.Cut(xff, ","); strings.TrimSpace(first) != "" {
			return strings.TrimSpace(first)
		}
	}
	if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); xri != "" {
		return xri
	}
	return c.RemoteIP()
}
