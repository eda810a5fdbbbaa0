package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/spotmap/pkg/constants"
	"github.com/agentstation/spotmap/pkg/errors"
)

// EnvPrefix is the prefix of spotmap environment variables (SPOTMAP_PORT, ...).
const EnvPrefix = "SPOTMAP"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose  bool
	Quiet    bool
	NoColor  bool
	Format   string
	LogLevel string

	// Config file
	ConfigFile string

	// Catalog source; empty uses the embedded catalog
	CatalogPath string

	// Logging configuration
	LogFormat string
	LogOutput string

	Server ServerConfig
}

// ServerConfig holds the defaults for `spotmap serve`. Flags override them.
type ServerConfig struct {
	Host        string
	Port        int
	PathPrefix  string
	CORS        bool
	CORSOrigins []string
	Auth        bool
	AuthHeader  string
	APIKey      string
	RateLimit   int
	RateBurst   int
	TrustProxy  bool
	CacheTTL    time.Duration
	Metrics     bool
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (SPOTMAP_*)
// 3. .env files
// 4. Config file (~/.spotmap.yaml, or the file named by SPOTMAP_CONFIG)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile is LoadConfig with an explicit config file. An empty path
// searches the standard locations.
func LoadConfigFile(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	setDefaults(v)

	if configFile == "" {
		configFile = v.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.DefaultConfigFile)
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing file in the search path is fine; a named or broken one is not.
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, &errors.ConfigError{Component: "config", Message: "failed to read config file", Err: err}
		}
	}

	config := &Config{
		Verbose:  v.GetBool("verbose"),
		Quiet:    v.GetBool("quiet"),
		NoColor:  v.GetBool("no-color") || os.Getenv("NO_COLOR") != "",
		Format:   v.GetString("output"),
		LogLevel: v.GetString("log-level"),

		ConfigFile:  v.ConfigFileUsed(),
		CatalogPath: v.GetString("catalog-path"),

		LogFormat: v.GetString("log-format"),
		LogOutput: v.GetString("log-output"),

		Server: ServerConfig{
			Host:        v.GetString("server.host"),
			Port:        v.GetInt("server.port"),
			PathPrefix:  v.GetString("server.prefix"),
			CORS:        v.GetBool("server.cors"),
			CORSOrigins: v.GetStringSlice("server.cors-origins"),
			Auth:        v.GetBool("server.auth"),
			AuthHeader:  v.GetString("server.auth-header"),
			APIKey:      v.GetString("server.api-key"),
			RateLimit:   v.GetInt("server.rate-limit"),
			RateBurst:   v.GetInt("server.rate-burst"),
			TrustProxy:  v.GetBool("server.trust-proxy"),
			CacheTTL:    v.GetDuration("server.cache-ttl"),
			Metrics:     v.GetBool("server.metrics"),
		},
	}

	// Unprefixed logging variables are honoured as well
	if config.LogLevel == "" {
		config.LogLevel = os.Getenv("LOG_LEVEL")
	}
	config.LogFormat = getEnvOrDefault("LOG_FORMAT", config.LogFormat)
	config.LogOutput = getEnvOrDefault("LOG_OUTPUT", config.LogOutput)

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log-format", "auto")
	v.SetDefault("log-output", "stderr")

	v.SetDefault("server.host", constants.DefaultHost)
	v.SetDefault("server.port", constants.DefaultPort)
	v.SetDefault("server.prefix", constants.DefaultPathPrefix)
	v.SetDefault("server.auth-header", "X-API-Key")
	v.SetDefault("server.rate-limit", constants.DefaultRateLimit)
	v.SetDefault("server.rate-burst", constants.BurstSize)
	v.SetDefault("server.cache-ttl", constants.CacheTTL)
	v.SetDefault("server.metrics", true)
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel, catalogPath string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if catalogPath != "" {
		c.CatalogPath = catalogPath
	}
}

// loadEnvFiles loads environment variables from .env files.
// godotenv never overrides variables that are already set; .env.local is
// loaded first so its values win over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
