package middleware

import (
	"safebridge/services/policy"
	"safebridge/utils"

	"github.com/gin-gonic/gin"
)

// RequireCapability gates a route on the policy table. It must run after
// SessionAuthMiddleware; violations become 403 responses so callers that
// skip the UI cannot reach mutations their role never renders.
func RequireCapability(cap policy.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := policy.Allow(SessionRole(c), cap); err != nil {
			utils.JSONDomainError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
