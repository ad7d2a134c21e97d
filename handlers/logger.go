package handlers

import (
	"safebridge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns a request-scoped logger if middleware has attached one
// under "logger", and the shared global logger otherwise.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}
