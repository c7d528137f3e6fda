package middleware

import (
	"strings"

	userRepo "drdhobi/database/repository/user"
	"drdhobi/utils"

	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware attaches "userID" and "role" when a valid bearer
// token is present and continues anonymously otherwise. Used on endpoints
// that accept both signed-in and guest submissions.
func OptionalAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.Next()
			return
		}

		usr, err := users.GetByID(userID)
		if err != nil || usr == nil {
			c.Next()
			return
		}

		c.Set("userID", usr.ID)
		c.Set("role", usr.Role)
		c.Next()
	}
}
