package middleware

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	AllowedOrigins []string // empty or "*" allows every origin
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int // preflight cache, seconds
	Debug          bool
}

// DefaultCORSConfig returns the read-only API defaults.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-API-Key"},
		MaxAge:         86400,
	}
}

// CORS handles preflight requests and adds CORS headers using rs/cors.
// Debug output goes to logger.
func CORS(config CORSConfig, logger *zerolog.Logger) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins: config.AllowedOrigins,
		AllowedMethods: config.AllowedMethods,
		AllowedHeaders: config.AllowedHeaders,
		MaxAge:         config.MaxAge,
		Debug:          config.Debug,
	}
	if config.Debug && logger != nil {
		opts.Logger = logger
	}

	if logger != nil {
		logger.Debug().
			Strs("allowed_origins", config.AllowedOrigins).
			Strs("allowed_methods", config.AllowedMethods).
			Msg("CORS middleware configured")
	}

	return cors.New(opts).Handler
}
