// Package handlers provides HTTP request handlers for the spotmap API.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/spotmap"
	"github.com/agentstation/spotmap/cmd/application"
	"github.com/agentstation/spotmap/internal/server/cache"
	"github.com/agentstation/spotmap/internal/server/metrics"
	"github.com/agentstation/spotmap/pkg/logging"
)

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	app     application.Application
	cache   *cache.Cache
	metrics *metrics.Metrics // nil when metrics are disabled
	logger  *zerolog.Logger
	uptime  func() time.Duration
}

// New creates a new Handlers instance.
func New(
	app application.Application,
	cache *cache.Cache,
	metrics *metrics.Metrics,
	logger *zerolog.Logger,
	uptime func() time.Duration,
) *Handlers {
	return &Handlers{
		app:     app,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
		uptime:  uptime,
	}
}

func (h *Handlers) client() (spotmap.Client, error) {
	return h.app.Spotmap()
}

// log returns the request-scoped logger set by the logging middleware.
func (h *Handlers) log(r *http.Request) *zerolog.Logger {
	if l := logging.FromContext(r.Context()); l != logging.Default() {
		return l
	}
	return h.logger
}

// tagged returns r with its context logger tagged by one of the logging
// id helpers, so later h.log calls carry the id.
func (h *Handlers) tagged(r *http.Request, tag func(context.Context, string) context.Context, id string) *http.Request {
	ctx := logging.WithLogger(r.Context(), h.log(r))
	return r.WithContext(tag(ctx, id))
}
