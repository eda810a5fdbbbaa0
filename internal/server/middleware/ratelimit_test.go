package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

func newTestLimiter(perMinute, burst int, opts ...RateLimitOption) (*RateLimiter, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClock()
	logger := zerolog.Nop()
	opts = append([]RateLimitOption{WithClock(clock)}, opts...)
	return NewRateLimiter(perMinute, burst, &logger, opts...), clock
}

// TestRateLimiter_Allow tests the burst and refill behavior.
func TestRateLimiter_Allow(t *testing.T) {
	rl, clock := newTestLimiter(60, 3)

	for i := range 3 {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("request over burst should be rejected")
	}

	// 60 per minute refills one token per second.
	clock.Advance(time.Second)
	if !rl.Allow("10.0.0.1") {
		t.Error("request after refill should be allowed")
	}
}

// TestRateLimiter_MultipleIPs tests per-IP isolation.
func TestRateLimiter_MultipleIPs(t *testing.T) {
	rl, _ := newTestLimiter(60, 1)

	if !rl.Allow("10.0.0.1") || !rl.Allow("10.0.0.2") {
		t.Fatal("first request of each IP should be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("second request of the same IP should be rejected")
	}
	if rl.Visitors() != 2 {
		t.Errorf("expected 2 visitors, got %d", rl.Visitors())
	}
}

// TestRateLimiter_Run tests idle client cleanup.
func TestRateLimiter_Run(t *testing.T) {
	rl, clock := newTestLimiter(60, 1)
	rl.Allow("10.0.0.1")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rl.Run(ctx, time.Minute)
		close(done)
	}()

	if err := clock.BlockUntilContext(ctx, 1); err != nil {
		t.Fatalf("ticker not started: %v", err)
	}
	clock.Advance(11 * time.Minute)

	deadline := time.Now().Add(2 * time.Second)
	for rl.Visitors() != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if rl.Visitors() != 0 {
		t.Errorf("expected idle visitor to be removed, got %d", rl.Visitors())
	}

	cancel()
	<-done
}

// TestRateLimit_Middleware tests the 429 envelope.
func TestRateLimit_Middleware(t *testing.T) {
	rl, _ := newTestLimiter(60, 1)
	handler := RateLimit(rl)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/spots", nil)
	req.RemoteAddr = "192.168.1.1:12345"

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
}

// TestClientIP tests IP extraction with and without proxy trust.
func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	if got := clientIP(req, false); got != "192.168.1.1" {
		t.Errorf("expected remote address, got %s", got)
	}
	if got := clientIP(req, true); got != "203.0.113.7" {
		t.Errorf("expected first forwarded address, got %s", got)
	}
}
