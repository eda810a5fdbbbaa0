// Package server provides the HTTP API over the spot catalog.
//
// The architecture follows the pattern: CLI → App → Server → Router → Handlers.
//
// Usage:
//
//	cfg := server.DefaultConfig()
//	srv, err := server.New(app, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv.Start(ctx) // background cleanup
//	http.ListenAndServe(cfg.Addr(), srv.Handler())
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/agentstation/spotmap/cmd/application"
	"github.com/agentstation/spotmap/internal/server/cache"
	"github.com/agentstation/spotmap/internal/server/metrics"
	"github.com/agentstation/spotmap/internal/server/middleware"
	"github.com/agentstation/spotmap/pkg/constants"
	"github.com/agentstation/spotmap/pkg/errors"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	app       application.Application
	cache     *cache.Cache
	metrics   *metrics.Metrics
	limiter   *middleware.RateLimiter
	logger    *zerolog.Logger
	config    Config
	clock     clockwork.Clock
	startTime time.Time
	cancel    context.CancelFunc
}

// Option configures a Server.
type Option func(*Server)

// WithClock sets the time source for uptime and rate limiting.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

// New creates a server. The catalog is loaded here so a broken catalog
// fails at start rather than on the first request.
func New(app application.Application, cfg Config, opts ...Option) (*Server, error) {
	logger := app.Logger()

	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = constants.CacheTTL
	}
	if cfg.PathPrefix == "" {
		cfg.PathPrefix = constants.DefaultPathPrefix
	}

	sm, err := app.Spotmap()
	if err != nil {
		return nil, errors.WrapResource("load", "catalog", "", err)
	}
	cat, err := sm.Catalog()
	if err != nil {
		return nil, errors.WrapResource("load", "catalog", "", err)
	}

	s := &Server{
		app:    app,
		cache:  cache.New(cfg.CacheTTL, constants.CacheCleanupInterval),
		logger: logger,
		config: cfg,
		clock:  clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.startTime = s.clock.Now()

	if cfg.MetricsEnabled {
		s.metrics = metrics.New()
		s.metrics.CatalogSpots.Set(float64(cat.Spots().Len()))
		s.metrics.CatalogRegions.Set(float64(cat.Regions().Len()))
		s.metrics.RegisterCache(func() (int, uint64, uint64) {
			stats := s.cache.GetStats()
			return stats.ItemCount, stats.Hits, stats.Misses
		})
	}

	if cfg.RateLimit > 0 {
		s.limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, logger,
			middleware.WithClock(s.clock),
			middleware.WithTrustProxy(cfg.TrustProxy),
		)
	}

	logger.Debug().
		Int("spots", cat.Spots().Len()).
		Int("regions", cat.Regions().Len()).
		Msg("Server instance created")
	return s, nil
}

// Start runs background cleanup until Shutdown or ctx is done.
func (s *Server) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	if s.limiter != nil {
		go s.limiter.Run(ctx, time.Minute)
	}
}

// Handler returns the configured http.Handler with the middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.setupRouter()
}

// Shutdown stops background services.
func (s *Server) Shutdown(_ context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}
	s.logger.Info().Msg("Server background services stopped")
	return nil
}

// Cache returns the server's cache instance.
func (s *Server) Cache() *cache.Cache {
	return s.cache
}

// Metrics returns the server collectors, or nil when metrics are disabled.
func (s *Server) Metrics() *metrics.Metrics {
	return s.metrics
}

// Uptime is the time since New on the server clock.
func (s *Server) Uptime() time.Duration {
	return s.clock.Since(s.startTime)
}
