package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type clientWindow struct {
	start time.Time
	count int
}

var (
	rlMu      sync.Mutex
	rlClients = make(map[string]*clientWindow)
)

// localRateLimit is the in-process fixed-window limiter, used when Redis is
// not configured. Per-IP, single instance only.
func localRateLimit(c *gin.Context, maxRequests int, window time.Duration) {
	ip := c.ClientIP()
	now := time.Now()

	rlMu.Lock()
	w, ok := rlClients[ip]
	if !ok || now.Sub(w.start) > window {
		rlClients[ip] = &clientWindow{start: now, count: 1}
		rlMu.Unlock()
		c.Next()
		return
	}
	w.count++
	blocked := w.count > maxRequests
	rlMu.Unlock()

	if blocked {
		rlBlocked.WithLabelValues(c.FullPath()).Inc()
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Rate limit exceeded"})
		return
	}
	c.Next()
}
