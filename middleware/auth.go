package middleware

import (
	"net/http"

	"main/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the dashboard routes. The session lives in
// a signed HTTP-only cookie set by the login handler.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(utils.AuthCookieName)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
			c.Abort()
			return
		}

		if err := utils.ValidateAdminToken(token); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired session"})
			c.Abort()
			return
		}

		c.Next()
	}
}
