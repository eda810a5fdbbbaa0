package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/agentstation/spotmap/pkg/constants"
	"github.com/agentstation/spotmap/pkg/errors"
)

// isolate points the config search path at an empty home directory.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

// TestLoadConfig verifies basic config loading and defaults.
func TestLoadConfig(t *testing.T) {
	isolate(t)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.LogFormat != "auto" {
		t.Errorf("LogFormat = %q, want auto", config.LogFormat)
	}
	if config.Server.Port != constants.DefaultPort {
		t.Errorf("Server.Port = %d, want %d", config.Server.Port, constants.DefaultPort)
	}
	if config.Server.PathPrefix != constants.DefaultPathPrefix {
		t.Errorf("Server.PathPrefix = %q, want %q", config.Server.PathPrefix, constants.DefaultPathPrefix)
	}
	if config.Server.CacheTTL != constants.CacheTTL {
		t.Errorf("Server.CacheTTL = %v, want %v", config.Server.CacheTTL, constants.CacheTTL)
	}
	if !config.Server.Metrics {
		t.Error("Server.Metrics should default to true")
	}
	if config.CatalogPath != "" {
		t.Errorf("CatalogPath = %q, want empty (embedded)", config.CatalogPath)
	}
}

// TestConfig_EnvironmentVariables verifies SPOTMAP_* variables are read.
func TestConfig_EnvironmentVariables(t *testing.T) {
	isolate(t)
	t.Setenv("SPOTMAP_OUTPUT", "json")
	t.Setenv("SPOTMAP_VERBOSE", "true")
	t.Setenv("SPOTMAP_CATALOG_PATH", "/srv/catalog")
	t.Setenv("SPOTMAP_SERVER_PORT", "7070")
	t.Setenv("SPOTMAP_SERVER_CACHE_TTL", "1m")
	t.Setenv("SPOTMAP_SERVER_AUTH", "true")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.Format != "json" {
		t.Errorf("Format = %q, want json", config.Format)
	}
	if !config.Verbose {
		t.Error("SPOTMAP_VERBOSE not loaded")
	}
	if config.CatalogPath != "/srv/catalog" {
		t.Errorf("CatalogPath = %q, want /srv/catalog", config.CatalogPath)
	}
	if config.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", config.Server.Port)
	}
	if config.Server.CacheTTL != time.Minute {
		t.Errorf("Server.CacheTTL = %v, want 1m", config.Server.CacheTTL)
	}
	if !config.Server.Auth {
		t.Error("SPOTMAP_SERVER_AUTH not loaded")
	}
}

// TestConfig_UnprefixedLogVariables verifies LOG_* fallbacks.
func TestConfig_UnprefixedLogVariables(t *testing.T) {
	isolate(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", config.LogLevel)
	}
	if config.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", config.LogFormat)
	}
}

// TestConfig_File verifies values are read from an explicit config file.
func TestConfig_File(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "spotmap.yaml")
	content := `output: yaml
server:
  port: 9999
  prefix: /spots/api
  cors-origins:
    - https://example.com
`
	if err := os.WriteFile(path, []byte(content), constants.FilePermissions); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	config, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile() failed: %v", err)
	}

	if config.ConfigFile != path {
		t.Errorf("ConfigFile = %q, want %q", config.ConfigFile, path)
	}
	if config.Format != "yaml" {
		t.Errorf("Format = %q, want yaml", config.Format)
	}
	if config.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999", config.Server.Port)
	}
	if config.Server.PathPrefix != "/spots/api" {
		t.Errorf("Server.PathPrefix = %q, want /spots/api", config.Server.PathPrefix)
	}
	if len(config.Server.CORSOrigins) != 1 || config.Server.CORSOrigins[0] != "https://example.com" {
		t.Errorf("Server.CORSOrigins = %v", config.Server.CORSOrigins)
	}
}

// TestConfig_MissingFile verifies a named config file must exist.
func TestConfig_MissingFile(t *testing.T) {
	isolate(t)

	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadConfigFile() succeeded for a missing file")
	}
	var configErr *errors.ConfigError
	if !errors.As(err, &configErr) {
		t.Errorf("error = %T, want *errors.ConfigError", err)
	}
}

// TestConfig_UpdateFromFlags verifies flag values take precedence.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{Format: "yaml", LogLevel: "warn", CatalogPath: "/a"}

	config.UpdateFromFlags(true, false, true, "", "", "")
	if !config.Verbose || !config.NoColor {
		t.Error("boolean flags not applied")
	}
	if config.Format != "yaml" || config.LogLevel != "warn" || config.CatalogPath != "/a" {
		t.Error("empty flag values must not override config")
	}

	config.UpdateFromFlags(false, false, false, "json", "debug", "/b")
	if config.Format != "json" {
		t.Errorf("Format = %q, want json", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", config.LogLevel)
	}
	if config.CatalogPath != "/b" {
		t.Errorf("CatalogPath = %q, want /b", config.CatalogPath)
	}
	if !config.Verbose {
		t.Error("a false flag must not clear a true config value")
	}
}
