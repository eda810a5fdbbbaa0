package server

import (
	"fmt"
	"time"

	"github.com/agentstation/spotmap/pkg/constants"
)

// Config holds server configuration.
type Config struct {
	// Server settings
	Host string
	Port int

	// API settings
	PathPrefix string

	// CORS settings
	CORSEnabled bool
	CORSOrigins []string // empty allows every origin

	// Authentication settings
	AuthEnabled bool
	AuthHeader  string
	APIKey      string

	// Performance settings
	RateLimit  int // Requests per minute per IP (0 to disable)
	RateBurst  int
	TrustProxy bool // take client IPs from X-Forwarded-For
	CacheTTL   time.Duration

	// HTTP timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Features
	MetricsEnabled bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:           constants.DefaultHost,
		Port:           constants.DefaultPort,
		PathPrefix:     constants.DefaultPathPrefix,
		AuthHeader:     "X-API-Key",
		RateLimit:      constants.DefaultRateLimit,
		RateBurst:      constants.BurstSize,
		CacheTTL:       constants.CacheTTL,
		ReadTimeout:    constants.ServerReadTimeout,
		WriteTimeout:   constants.ServerWriteTimeout,
		IdleTimeout:    constants.ServerIdleTimeout,
		MetricsEnabled: true,
	}
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
