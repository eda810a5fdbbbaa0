// Package serve provides the HTTP API server command.
package serve

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/agentstation/spotmap/cmd/application"
	"github.com/agentstation/spotmap/internal/cmd/emoji"
	"github.com/agentstation/spotmap/internal/server"
	"github.com/agentstation/spotmap/pkg/constants"
	"github.com/agentstation/spotmap/pkg/errors"
)

// NewCommand creates the serve command. defaults supplies the configured
// values; flags override them only when set.
func NewCommand(app application.Application, defaults func() server.Config) *cobra.Command {
	def := defaults()

	cmd := &cobra.Command{
		Use:     "serve",
		GroupID: "core",
		Aliases: []string{"server"},
		Short:   "Start the REST API server",
		Long: `Start a REST API server over the spot catalog.

Features:
  - Region, spot, category and navigation endpoints under the API prefix
  - Listing filters that fall back to defaults and report warnings
  - In-memory response caching with configurable TTL
  - Rate limiting (requests per minute per IP)
  - API key authentication (optional)
  - CORS support for web applications
  - Prometheus metrics (/metrics)
  - Graceful shutdown with connection draining
  - OpenAPI 3.0 documentation (/api/v1/openapi.json)`,
		Example: `  # Start on default port 8080
  spotmap serve

  # Custom port with authentication
  SPOTMAP_SERVER_API_KEY=secret spotmap serve --port 3000 --auth

  # Enable CORS for specific origins
  spotmap serve --cors-origins "https://example.com,https://app.example.com"

  # Disable rate limiting
  spotmap serve --rate-limit 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := parseConfig(cmd, defaults())
			return run(cmd.Context(), app, cfg, cmd.OutOrStdout())
		},
	}

	// Server configuration flags
	cmd.Flags().Int("port", def.Port, "Server port")
	cmd.Flags().String("host", def.Host, "Bind address")
	cmd.Flags().String("prefix", def.PathPrefix, "API path prefix")

	// CORS flags
	cmd.Flags().Bool("cors", def.CORSEnabled, "Enable CORS for all origins")
	cmd.Flags().StringSlice("cors-origins", def.CORSOrigins, "Allowed CORS origins (comma-separated)")

	// Authentication flags
	cmd.Flags().Bool("auth", def.AuthEnabled, "Enable API key authentication (key from SPOTMAP_SERVER_API_KEY)")
	cmd.Flags().String("auth-header", def.AuthHeader, "Authentication header name")

	// Performance flags
	cmd.Flags().Int("rate-limit", def.RateLimit, "Requests per minute per IP (0 to disable)")
	cmd.Flags().Int("rate-burst", def.RateBurst, "Rate limit burst size")
	cmd.Flags().Bool("trust-proxy", def.TrustProxy, "Take client IPs from X-Forwarded-For")
	cmd.Flags().Duration("cache-ttl", def.CacheTTL, "Response cache TTL")

	// Timeout flags
	cmd.Flags().Duration("read-timeout", def.ReadTimeout, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", def.WriteTimeout, "HTTP write timeout")
	cmd.Flags().Duration("idle-timeout", def.IdleTimeout, "HTTP idle timeout")

	cmd.Flags().Bool("metrics", def.MetricsEnabled, "Enable metrics endpoint")

	return cmd
}

// parseConfig applies the flags the user set on top of cfg.
func parseConfig(cmd *cobra.Command, cfg server.Config) server.Config {
	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}

	set("port", func() { cfg.Port = mustGet(flags.GetInt("port")) })
	set("host", func() { cfg.Host = mustGet(flags.GetString("host")) })
	set("prefix", func() { cfg.PathPrefix = mustGet(flags.GetString("prefix")) })
	set("cors", func() { cfg.CORSEnabled = mustGet(flags.GetBool("cors")) })
	set("cors-origins", func() { cfg.CORSOrigins = mustGet(flags.GetStringSlice("cors-origins")) })
	set("auth", func() { cfg.AuthEnabled = mustGet(flags.GetBool("auth")) })
	set("auth-header", func() { cfg.AuthHeader = mustGet(flags.GetString("auth-header")) })
	set("rate-limit", func() { cfg.RateLimit = mustGet(flags.GetInt("rate-limit")) })
	set("rate-burst", func() { cfg.RateBurst = mustGet(flags.GetInt("rate-burst")) })
	set("trust-proxy", func() { cfg.TrustProxy = mustGet(flags.GetBool("trust-proxy")) })
	set("cache-ttl", func() { cfg.CacheTTL = mustGet(flags.GetDuration("cache-ttl")) })
	set("read-timeout", func() { cfg.ReadTimeout = mustGet(flags.GetDuration("read-timeout")) })
	set("write-timeout", func() { cfg.WriteTimeout = mustGet(flags.GetDuration("write-timeout")) })
	set("idle-timeout", func() { cfg.IdleTimeout = mustGet(flags.GetDuration("idle-timeout")) })
	set("metrics", func() { cfg.MetricsEnabled = mustGet(flags.GetBool("metrics")) })

	// Origins imply CORS
	if len(cfg.CORSOrigins) > 0 {
		cfg.CORSEnabled = true
	}
	return cfg
}

// mustGet unwraps a flag lookup. Flags are defined in this package, so an
// error is a programming error.
func mustGet[T any](v T, err error) T {
	if err != nil {
		panic("programming error: " + err.Error())
	}
	return v
}

func run(ctx context.Context, app application.Application, cfg server.Config, out io.Writer) error {
	if cfg.AuthEnabled && cfg.APIKey == "" {
		return &errors.ConfigError{Component: "server", Message: "--auth requires SPOTMAP_SERVER_API_KEY"}
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return errors.WrapIO("listen", cfg.Addr(), err)
	}
	return serve(ctx, app, cfg, ln, out)
}

// serve runs the API on ln until ctx is done, then shuts down gracefully.
func serve(ctx context.Context, app application.Application, cfg server.Config, ln net.Listener, out io.Writer) error {
	logger := app.Logger()

	srv, err := server.New(app, cfg)
	if err != nil {
		_ = ln.Close()
		return fmt.Errorf("creating server: %w", err)
	}
	srv.Start(ctx)

	httpServer := &http.Server{
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	logger.Info().
		Str("addr", ln.Addr().String()).
		Str("prefix", cfg.PathPrefix).
		Bool("cors", cfg.CORSEnabled).
		Bool("auth", cfg.AuthEnabled).
		Int("rate_limit", cfg.RateLimit).
		Dur("cache_ttl", cfg.CacheTTL).
		Bool("metrics", cfg.MetricsEnabled).
		Msg("Starting API server")

	serverErr := make(chan error, 1)
	go func() {
		_, _ = fmt.Fprintf(out, "%s API server listening on http://%s%s\n", emoji.Success, ln.Addr(), cfg.PathPrefix)
		if err := httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		_ = srv.Shutdown(context.Background())
		return err
	case <-ctx.Done():
		logger.Info().Msg("Shutdown signal received")
		_, _ = fmt.Fprintf(out, "%s Shutting down API server...\n", emoji.Stop)

		// The parent context is already cancelled
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("Background services shutdown had issues")
		}

		logger.Info().Dur("uptime", srv.Uptime()).Msg("Server stopped gracefully")
		return nil
	}
}
