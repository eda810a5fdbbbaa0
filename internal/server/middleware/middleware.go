// Package middleware provides HTTP middleware for the spotmap API server:
// logging, recovery, metrics, CORS, authentication, and rate limiting.
package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/agentstation/spotmap/internal/server/metrics"
	"github.com/agentstation/spotmap/internal/server/response"
	"github.com/agentstation/spotmap/pkg/logging"
)

// Chain combines middleware into one. The first argument is the outermost.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// Logger logs HTTP requests and puts a request-scoped logger in the
// request context, where logging.FromContext finds it. Each request gets
// the caller's X-Request-ID, or a fresh one, echoed in the response.
func Logger(logger *zerolog.Logger, clock clockwork.Clock) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := clock.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			reqLogger := logger.With().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote_addr", r.RemoteAddr).
				Logger()
			ctx := logging.WithLogger(r.Context(), &reqLogger)
			ctx = logging.WithRequestID(ctx, requestID)

			next.ServeHTTP(wrapped, r.WithContext(ctx))

			event := logger.Info()
			switch {
			case wrapped.statusCode >= http.StatusInternalServerError:
				event = logger.Error()
			case wrapped.statusCode >= http.StatusBadRequest:
				event = logger.Warn()
			}
			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("query", r.URL.RawQuery).
				Int("status", wrapped.statusCode).
				Dur("duration_ms", clock.Since(start)).
				Str("request_id", requestID).
				Str("remote_addr", r.RemoteAddr).
				Msg("HTTP request")
		})
	}
}

// Recovery recovers from panics and returns a 500 envelope.
func Recovery(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error().
						Interface("panic", err).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("Panic recovered")
					response.InternalError(w, nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// Metrics records request counts and durations. Routes are labeled by
// RouteLabel so ids do not explode label cardinality.
func Metrics(m *metrics.Metrics, prefix string, clock clockwork.Clock) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := clock.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			m.ObserveRequest(r.Method, RouteLabel(prefix, r.URL.Path), wrapped.statusCode, clock.Since(start))
		})
	}
}

// RouteLabel collapses the id segment of an API path:
// /api/v1/spots/sensoji becomes /api/v1/spots/{id}.
func RouteLabel(prefix, path string) string {
	rest, ok := strings.CutPrefix(path, prefix+"/")
	if !ok {
		return path
	}
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) > 1 {
		parts[1] = "{id}"
	}
	if len(parts) > 3 {
		parts = parts[:3]
	}
	return prefix + "/" + strings.Join(parts, "/")
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
