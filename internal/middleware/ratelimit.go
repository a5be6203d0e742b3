package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tridenda/talentlytica/internal/response"
)

// RateLimiter is a per-IP token bucket. A bucket holds at most rate tokens
// and is refilled completely every interval.
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rate      int
	interval  time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type visitor struct {
	tokens   int
	lastFill time.Time
	lastSeen time.Time
}

// NewRateLimiter creates a RateLimiter (e.g., 30 form creations per minute).
func NewRateLimiter(rate int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		interval: interval,
		now:      time.Now,
	}
}

// Middleware returns a Gin middleware that rate-limits requests by IP.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			response.AbortFail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	v, exists := rl.visitors[ip]
	if !exists {
		v = &visitor{tokens: rl.rate, lastFill: now}
		rl.visitors[ip] = v
	}
	v.lastSeen = now

	if periods := int(now.Sub(v.lastFill) / rl.interval); periods > 0 {
		v.tokens = rl.rate
		v.lastFill = v.lastFill.Add(time.Duration(periods) * rl.interval)
	}

	if v.tokens <= 0 {
		return false
	}
	v.tokens--
	return true
}

// sweep drops visitors idle for three intervals, at most once per interval.
// Callers hold rl.mu.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.interval {
		return
	}
	rl.lastSweep = now
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > 3*rl.interval {
			delete(rl.visitors, ip)
		}
	}
}
