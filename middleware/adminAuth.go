package middleware

import (
	"net/http"
	"strings"

	"safebridge/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminPasscodeMiddleware guards destructive admin endpoints with a
// passcode checked against the bcrypt hash from config. This is a second
// factor on top of the Admin session role, since the data wipe is the one
// irrecoverable action in the system.
func AdminPasscodeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		passcode := c.GetHeader("X-Admin-Passcode")
		if strings.TrimSpace(passcode) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing X-Admin-Passcode header"})
			return
		}

		hash := config.AppConfig.AdminPasscodeHash
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
