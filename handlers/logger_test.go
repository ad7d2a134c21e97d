package handlers

import (
	"net/http/httptest"
	"testing"

	"safebridge/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGetLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("falls back to the shared logger", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Same(t, utils.GetLogger(), getLogger(c))
	})

	t.Run("prefers a request-scoped logger", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		scoped := zap.NewNop()
		c.Set("logger", scoped)
		assert.Same(t, scoped, getLogger(c))
	})
}
