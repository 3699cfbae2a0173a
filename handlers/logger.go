package handlers

import (
	"sparkle/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns base, or the global logger when base is nil, tagged with
// the request's method and path.
func getLogger(c *gin.Context, base *zap.Logger) *zap.Logger {
	if base == nil {
		base = utils.GetLogger()
	}
	return base.With(
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
	)
}
