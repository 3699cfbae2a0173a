package handlers

import (
	"net/http"

	"sparkle/utils"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health with the latest background health snapshot.
func Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.CheckedAt.IsZero() && !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
