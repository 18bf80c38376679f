package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// UseRedis hands the shared Redis client to the rate limiter. When it is
// never called (Redis not configured), RateLimit falls back to the
// in-memory limiter.
func UseRedis(client *redis.Client) {
	redisClient = client
}

// RateLimit returns the per-IP fixed-window limiter for the configured
// backend: Redis when available, process memory otherwise.
func RateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	redisLimit := redisRateLimit(maxRequests, window)
	memLimit := memoryRateLimit(maxRequests, window)

	return func(c *gin.Context) {
		if redisClient != nil {
			redisLimit(c)
			return
		}
		memLimit(c)
	}
}

// redisRateLimit implements a fixed window using Redis INCR/EXPIRE.
// key format: rl:<window_seconds>:<ip>
func redisRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rl:" + strconv.FormatInt(int64(window.Seconds()), 10) + ":" + c.ClientIP()
		ctx := context.Background()

		val, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			// fail-open on Redis errors to keep the game playable
			c.Header("X-RateLimit-Error", "redis-error")
			c.Next()
			return
		}

		if val == 1 {
			redisClient.Expire(ctx, key, window)
		}

		if val > int64(maxRequests) {
			RLBlocked.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		RLRequests.WithLabelValues(c.FullPath()).Inc()
		c.Next()
	}
}
