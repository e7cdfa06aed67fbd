package handlers

import (
	"net/http"

	"mehfil/utils"

	"github.com/gin-gonic/gin"
)

// Health reports the last dependency check. It answers 503 while a dependency is down.
func Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	state := "ok"
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{"status": state, "message": "Hi, I'm Mehfil", "checks": status})
}
