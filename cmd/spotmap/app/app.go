// Package app provides the application context and dependency management
// for the spotmap CLI: configuration, the logger and the lazily created
// spotmap client shared by every command.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/spotmap"
	"github.com/agentstation/spotmap/cmd/application"
	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/errors"
)

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// App represents the spotmap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Client is created on first use and then shared
	mu     sync.RWMutex
	client spotmap.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the --format value; empty means auto-detect.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Spotmap returns the client, creating it on first use.
// This is thread-safe and ensures only one instance is created.
func (a *App) Spotmap() (spotmap.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	c, err := spotmap.New(a.clientOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "spotmap", a.config.CatalogPath, err)
	}

	a.client = c
	return c, nil
}

// Catalog returns the loaded catalog. Catalogs are immutable, so the
// same instance is shared by every caller.
func (a *App) Catalog() (catalogs.Reader, error) {
	c, err := a.Spotmap()
	if err != nil {
		return nil, err
	}

	cat, err := c.Catalog()
	if err != nil {
		return nil, errors.WrapResource("get", "catalog", "", err)
	}
	return cat, nil
}

// Shutdown releases application resources. The catalog holds none, so
// this only drops the cached client.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	a.client = nil
	a.mu.Unlock()
	return nil
}

func (a *App) clientOptions() []spotmap.Option {
	opts := []spotmap.Option{spotmap.WithLogger(a.logger)}
	if a.config.CatalogPath != "" {
		opts = append(opts, spotmap.WithCatalogPath(a.config.CatalogPath))
	}
	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a prebuilt client (useful for testing).
func WithClient(c spotmap.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}
