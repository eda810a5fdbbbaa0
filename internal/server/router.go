package server

import (
	"net/http"

	"github.com/agentstation/spotmap/internal/server/handlers"
	"github.com/agentstation/spotmap/internal/server/middleware"
)

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	mux := http.NewServeMux()

	h := handlers.New(
		s.app,
		s.cache,
		s.metrics,
		s.logger,
		s.Uptime,
	)

	s.registerRoutes(mux, h)
	return s.applyMiddleware(mux)
}

// registerRoutes registers all HTTP routes. Every API route is read-only.
func (s *Server) registerRoutes(mux *http.ServeMux, h *handlers.Handlers) {
	prefix := s.config.PathPrefix

	// Favicon handler (return 204 No Content to avoid 404 logs)
	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Public health endpoints (no auth required)
	mux.HandleFunc("GET /health", h.HandleHealth)
	mux.HandleFunc("GET "+prefix+"/health", h.HandleHealth)
	mux.HandleFunc("GET "+prefix+"/ready", h.HandleReady)

	// Regions
	mux.HandleFunc("GET "+prefix+"/regions", h.HandleListRegions)
	mux.HandleFunc("GET "+prefix+"/regions/{id}", h.HandleGetRegion)
	mux.HandleFunc("GET "+prefix+"/regions/{id}/spots", h.HandleGetRegionSpots)

	// Spots
	mux.HandleFunc("GET "+prefix+"/spots", h.HandleListSpots)
	mux.HandleFunc("GET "+prefix+"/spots/{id}", h.HandleGetSpot)

	// Categories and navigation
	mux.HandleFunc("GET "+prefix+"/categories", h.HandleListCategories)
	mux.HandleFunc("GET "+prefix+"/navigate", h.HandleNavigate)

	// OpenAPI specification endpoints
	mux.HandleFunc("GET "+prefix+"/openapi.json", h.HandleOpenAPIJSON)
	mux.HandleFunc("GET "+prefix+"/openapi.yaml", h.HandleOpenAPIYAML)

	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}
}

// applyMiddleware wraps handler with the middleware chain. The order,
// outermost first, is recovery, logging, metrics, CORS, auth, rate limit.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	cfg := s.config

	chain := []func(http.Handler) http.Handler{
		middleware.Recovery(s.logger),
		middleware.Logger(s.logger, s.clock),
	}

	if s.metrics != nil {
		chain = append(chain, middleware.Metrics(s.metrics, cfg.PathPrefix, s.clock))
	}

	if cfg.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		if len(cfg.CORSOrigins) > 0 {
			corsConfig.AllowedOrigins = cfg.CORSOrigins
		}
		chain = append(chain, middleware.CORS(corsConfig, s.logger))
	}

	if cfg.AuthEnabled {
		authConfig := middleware.DefaultAuthConfig()
		authConfig.Enabled = true
		authConfig.APIKey = cfg.APIKey
		if cfg.AuthHeader != "" {
			authConfig.HeaderName = cfg.AuthHeader
		}
		authConfig.PublicPaths = append(authConfig.PublicPaths,
			cfg.PathPrefix+"/health", cfg.PathPrefix+"/ready",
			cfg.PathPrefix+"/openapi.json", cfg.PathPrefix+"/openapi.yaml")
		chain = append(chain, middleware.Auth(authConfig, s.logger))
	}

	if s.limiter != nil {
		chain = append(chain, middleware.RateLimit(s.limiter))
	}

	return middleware.Chain(chain...)(handler)
}
