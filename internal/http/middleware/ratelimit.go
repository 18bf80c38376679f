package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type clientInfo struct {
	windowStart time.Time
	count       int
}

var (
	rlMu    sync.Mutex
	clients = make(map[string]*clientInfo)
)

// memoryRateLimit is the single-instance fallback: a fixed window per IP
// kept in a process-local map.
func memoryRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rlMu.Lock()
		ci, ok := clients[ip]
		if !ok || now.Sub(ci.windowStart) > window {
			clients[ip] = &clientInfo{windowStart: now, count: 1}
			rlMu.Unlock()
			RLRequests.WithLabelValues(c.FullPath()).Inc()
			c.Next()
			return
		}
		ci.count++
		count := ci.count
		rlMu.Unlock()

		if count > maxRequests {
			RLBlocked.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		RLRequests.WithLabelValues(c.FullPath()).Inc()
		c.Next()
	}
}
