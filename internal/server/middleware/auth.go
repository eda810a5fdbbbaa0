package middleware

import (
	"crypto/subtle"
	"net/http"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/spotmap/internal/server/response"
)

// AuthConfig holds API key authentication configuration.
type AuthConfig struct {
	Enabled     bool
	APIKey      string
	HeaderName  string
	PublicPaths []string
}

// DefaultAuthConfig returns the default configuration: disabled, with the
// probes and metrics public.
func DefaultAuthConfig() AuthConfig {
	return AuthConfig{
		HeaderName:  "X-API-Key",
		PublicPaths: []string{"/health", "/metrics", "/api/v1/health", "/api/v1/ready", "/api/v1/openapi.json", "/api/v1/openapi.yaml"},
	}
}

// Auth validates the API key of requests to non-public paths.
func Auth(config AuthConfig, logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !config.Enabled || r.Method == http.MethodOptions || isPublicPath(r.URL.Path, config.PublicPaths) {
				next.ServeHTTP(w, r)
				return
			}

			apiKey := extractAPIKey(r, config.HeaderName)
			if apiKey == "" || config.APIKey == "" ||
				subtle.ConstantTimeCompare([]byte(apiKey), []byte(config.APIKey)) != 1 {
				logger.Warn().
					Str("path", r.URL.Path).
					Str("remote_addr", r.RemoteAddr).
					Bool("key_provided", apiKey != "").
					Msg("Authentication failed")

				response.Unauthorized(w, "Invalid or missing API key",
					"Provide a valid API key in the "+config.HeaderName+" header")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string, publicPaths []string) bool {
	return slices.Contains(publicPaths, path)
}

// extractAPIKey reads the key from the configured header, then from
// Authorization, with or without a Bearer prefix.
func extractAPIKey(r *http.Request, headerName string) string {
	if apiKey := r.Header.Get(headerName); apiKey != "" {
		return apiKey
	}
	auth := r.Header.Get("Authorization")
	if key, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return key
	}
	return auth
}
