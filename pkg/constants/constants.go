// Package constants provides shared constants used throughout spotmap:
// server timeouts, cache and rate limit defaults, file permissions and
// display limits.
package constants

import "time"

// Timeout constants
const (
	// ShutdownTimeout bounds graceful HTTP server shutdown
	ShutdownTimeout = 30 * time.Second

	// ServerReadTimeout is the HTTP server read timeout
	ServerReadTimeout = 10 * time.Second

	// ServerWriteTimeout is the HTTP server write timeout
	ServerWriteTimeout = 10 * time.Second

	// ServerIdleTimeout is the HTTP server keep-alive idle timeout
	ServerIdleTimeout = 120 * time.Second
)

// File permission constants
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Display limits
const (
	// MaxDisplayHighlights is how many highlights a spot card shows
	MaxDisplayHighlights = 3

	// MaxRatingValue is the top of the rating scale
	MaxRatingValue = 5.0
)

// Rate limiting constants
const (
	// DefaultRateLimit is the default requests per minute per client
	DefaultRateLimit = 100

	// BurstSize is the token bucket burst size for rate limiting
	BurstSize = 10
)

// Cache constants
const (
	// CacheTTL is the default time-to-live for cached responses
	CacheTTL = 5 * time.Minute

	// CacheCleanupInterval is how often expired cache entries are purged
	CacheCleanupInterval = 10 * time.Minute
)

// Server defaults
const (
	// DefaultHost is the interface the API server binds to
	DefaultHost = "localhost"

	// DefaultPort is the API server port
	DefaultPort = 8080

	// DefaultPathPrefix is the API route prefix
	DefaultPathPrefix = "/api/v1"
)

// Path constants
const (
	// DefaultConfigFile is the config file name looked up in $HOME and the working directory
	DefaultConfigFile = ".spotmap"

	// DefaultDocsPath is where `generate docs` writes by default
	DefaultDocsPath = "./docs/catalog"
)
