package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/wb-go/wbf/ginext"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles each client IP with its own token bucket.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	lastGC   time.Time
	now      func() time.Time
}

// NewRateLimiter allows rps requests per second per client with the given
// burst. Clients idle for longer than ttl are forgotten.
func NewRateLimiter(rps float64, burst int, ttl time.Duration) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.gc(now)

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// Caller holds rl.mu.
func (rl *RateLimiter) gc(now time.Time) {
	if rl.ttl <= 0 || now.Sub(rl.lastGC) < rl.ttl {
		return
	}
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.ttl {
			delete(rl.visitors, ip)
		}
	}
	rl.lastGC = now
}

func (rl *RateLimiter) Limit() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if !rl.getLimiter(c.ClientIP()).Allow() {
			c.Set("error", "rate limit exceeded")
			c.Header("Retry-After", "1")
			c.String(http.StatusTooManyRequests, "Too many requests, please slow down.")
			c.Abort()
			return
		}
		c.Next()
	}
}
