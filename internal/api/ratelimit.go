package api

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/Cryptdroid/meteor/internal/httputil"
)

// ipRateLimiter hands out one token bucket per client IP. Stale entries are
// evicted so the map does not grow without bound under scanning traffic.
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiterEntry
	rps      rate.Limit
	burst    int
}

type ipLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterIdleTimeout is how long an IP may be idle before its bucket is
// dropped.
const limiterIdleTimeout = 10 * time.Minute

func newIPRateLimiter(rps float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*ipLimiterEntry),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

// allow reports whether the given IP may proceed, consuming a token if so.
func (rl *ipRateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	entry, ok := rl.limiters[ip]
	if !ok {
		entry = &ipLimiterEntry{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.limiters[ip] = entry
	}
	entry.lastSeen = now

	// Opportunistic eviction; the map is small enough to sweep inline.
	for key, e := range rl.limiters {
		if now.Sub(e.lastSeen) > limiterIdleTimeout {
			delete(rl.limiters, key)
		}
	}

	return entry.limiter.Allow()
}

// newRateLimitMiddleware builds the per-IP limiter for compute endpoints.
// A non-positive rate disables limiting entirely.
func newRateLimitMiddleware(cfg Config, logger *slog.Logger) func(http.Handler) http.Handler {
	if cfg.SimulateRPS <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	burst := cfg.SimulateBurst
	if burst < 1 {
		burst = 1
	}
	rl := newIPRateLimiter(cfg.SimulateRPS, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := httputil.ClientIP(r, cfg.TrustProxy)
			if !rl.allow(ip) {
				logger.Warn("rate limit exceeded", "ip", ip, "path", r.URL.Path)
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded, slow down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
