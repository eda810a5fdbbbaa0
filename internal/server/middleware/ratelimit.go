package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/agentstation/spotmap/internal/server/response"
)

// RateLimiter is a token bucket per client IP.
type RateLimiter struct {
	mu         sync.Mutex
	visitors   map[string]*visitor
	limit      rate.Limit
	burst      int
	idleTTL    time.Duration
	trustProxy bool
	clock      clockwork.Clock
	logger     *zerolog.Logger
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitOption configures a RateLimiter.
type RateLimitOption func(*RateLimiter)

// WithClock sets the time source.
func WithClock(clock clockwork.Clock) RateLimitOption {
	return func(rl *RateLimiter) {
		rl.clock = clock
	}
}

// WithTrustProxy takes the client IP from X-Forwarded-For or X-Real-IP.
func WithTrustProxy(trust bool) RateLimitOption {
	return func(rl *RateLimiter) {
		rl.trustProxy = trust
	}
}

// NewRateLimiter creates a limiter allowing perMinute requests per IP with
// bursts of up to burst requests.
func NewRateLimiter(perMinute, burst int, logger *zerolog.Logger, opts ...RateLimitOption) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(float64(perMinute) / 60),
		burst:    burst,
		idleTTL:  10 * time.Minute,
		clock:    clockwork.NewRealClock(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(rl)
	}
	return rl
}

// Allow reports whether a request from ip may proceed now.
func (rl *RateLimiter) Allow(ip string) bool {
	now := rl.clock.Now()

	rl.mu.Lock()
	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	rl.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}

// Visitors returns the number of tracked clients.
func (rl *RateLimiter) Visitors() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

// Run forgets idle clients every interval until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := rl.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			rl.cleanup()
		}
	}
}

func (rl *RateLimiter) cleanup() {
	cutoff := rl.clock.Now().Add(-rl.idleTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, ip)
		}
	}
}

// RateLimit rejects requests over the per-IP limit with 429.
func RateLimit(rl *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r, rl.trustProxy)

			if !rl.Allow(ip) {
				rl.logger.Warn().
					Str("ip", ip).
					Str("path", r.URL.Path).
					Msg("Rate limit exceeded")

				w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfter()))
				response.RateLimited(w, "Too many requests. Please try again later.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) retryAfter() int {
	if rl.limit <= 0 {
		return 60
	}
	seconds := int(1/float64(rl.limit)) + 1
	return max(seconds, 1)
}

func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(first)
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return xri
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
