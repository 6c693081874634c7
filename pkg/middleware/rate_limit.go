package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// rateLimitKey keys by the authenticated user when an auth middleware ran
// earlier in the chain, by client IP otherwise.
func rateLimitKey(c *gin.Context) string {
	caller := c.GetString("user_id")
	if caller == "" {
		caller = c.ClientIP()
	}
	return fmt.Sprintf("rate_limit:%s:%s", c.FullPath(), caller)
}

// RateLimitMiddleware counts requests per route and caller in a fixed window.
// Register it after the auth middleware so limits apply per user. A nil
// client disables limiting.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil || limit <= 0 {
			c.Next()
			return
		}

		key := rateLimitKey(c)

		ctx := c.Request.Context()
		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
			c.Abort()
			return
		}

		if count == 1 {
			redisClient.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}
