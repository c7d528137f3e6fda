package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	userRepo "drdhobi/database/repository/user"
	"drdhobi/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthUserMiddleware authenticates a request with a bearer token, loading
// the account role through the auth cache when possible. It sets "userID"
// and "role" in the request context.
func JWTAuthUserMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		// The role rarely changes, so cache it keyed by user ID and fall
		// back to the database on a miss.
		cacheKey := utils.AuthCachePrefix + "role:" + userID

		authCache := utils.GetAuthCacheClient()
		cacheEnabled := true
		if authCache == nil {
			log.Printf("WARNING: Auth cache client not available. Falling back to DB lookup.")
			cacheEnabled = false
		}

		if cacheEnabled {
			role, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
				c.Set("userID", userID)
				c.Set("role", role)
				c.Next()
				return
			} else if err != redis.Nil {
				log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to DB lookup.", err)
			}
		}

		usr, err := users.GetByID(userID)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication error",
				"code":  0,
			})
			return
		}

		if cacheEnabled {
			_ = authCache.Set(ctx, cacheKey, usr.Role, time.Hour).Err()
		}

		c.Set("userID", usr.ID)
		c.Set("role", usr.Role)
		c.Next()
	}
}

// InvalidateRoleCache drops a user's cached role, e.g. after a role change.
func InvalidateRoleCache(userID string) {
	authCache := utils.GetAuthCacheClient()
	if authCache == nil {
		return
	}
	_ = authCache.Del(context.Background(), utils.AuthCachePrefix+"role:"+userID).Err()
}
