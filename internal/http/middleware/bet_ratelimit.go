package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// BetRateLimit limits bet placements per user (not per IP) using Redis.
// Requires the JWT middleware to have run first.
func BetRateLimit(maxBets int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil {
			c.Next()
			return
		}

		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		userID, ok := userIDVal.(int64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid user"})
			return
		}

		key := "bet_rl:" + strconv.FormatInt(userID, 10) + ":" + strconv.FormatInt(int64(window.Seconds()), 10)
		ctx := context.Background()

		val, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			c.Header("X-BetRateLimit-Error", "redis-error")
			c.Next()
			return
		}

		if val == 1 {
			redisClient.Expire(ctx, key, window)
		}

		c.Header("X-BetRateLimit-Limit", strconv.Itoa(maxBets))
		c.Header("X-BetRateLimit-Remaining", strconv.FormatInt(max(0, int64(maxBets)-val), 10))

		if val > int64(maxBets) {
			RLBlocked.WithLabelValues("bet:" + c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "bet rate limit exceeded",
				"retry_after": int(window.Seconds()),
			})
			return
		}

		c.Next()
	}
}
