package middleware

import (
	"net/http"

	"drdhobi/models"

	"github.com/gin-gonic/gin"
)

// RequireAdmin rejects requests whose authenticated account does not carry
// the admin role. It must run after JWTAuthUserMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
