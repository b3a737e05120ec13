package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tutorlane/tutorlane-backend/internal/response"
)

// RateLimiter caps requests per client IP over a fixed window. It guards
// the mutating endpoints, where a burst of retries could otherwise chew
// through row locks.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	period  time.Duration
}

type window struct {
	start time.Time
	count int
}

// NewRateLimiter creates a limiter allowing limit requests per period
// per IP and starts a background sweep of idle entries.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	rl := &RateLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		period:  period,
	}
	go rl.sweep()
	return rl
}

// Middleware returns a Gin middleware enforcing the limit by client IP.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP(), time.Now()) {
			response.AbortFail(c, http.StatusTooManyRequests, "Too many requests")
			return
		}
		c.Next()
	}
}

// allow counts one request against ip's current window, opening a fresh
// window once the previous one has elapsed.
func (rl *RateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[ip]
	if !ok || now.Sub(w.start) >= rl.period {
		rl.windows[ip] = &window{start: now, count: 1}
		return true
	}
	if w.count >= rl.limit {
		return false
	}
	w.count++
	return true
}

// sweep drops windows idle for two full periods.
func (rl *RateLimiter) sweep() {
	for range time.Tick(time.Minute) {
		cutoff := time.Now().Add(-2 * rl.period)
		rl.mu.Lock()
		for ip, w := range rl.windows {
			if w.start.Before(cutoff) {
				delete(rl.windows, ip)
			}
		}
		rl.mu.Unlock()
	}
}
