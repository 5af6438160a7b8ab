package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cleanify-be/models"
)

// RequireRole rejects any caller whose role is not the given one. It only
// reads the user object resolved by AuthMiddleware, so it runs before any
// store access; no partial state is written before a rejection.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			c.Abort()
			return
		}
		if user.Role != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}
