package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/spotmap/cmd/spotmap/cmd/categories"
	"github.com/agentstation/spotmap/cmd/spotmap/cmd/generate"
	"github.com/agentstation/spotmap/cmd/spotmap/cmd/navigate"
	"github.com/agentstation/spotmap/cmd/spotmap/cmd/regions"
	"github.com/agentstation/spotmap/cmd/spotmap/cmd/serve"
	"github.com/agentstation/spotmap/cmd/spotmap/cmd/spots"
	"github.com/agentstation/spotmap/cmd/spotmap/cmd/validate"
	"github.com/agentstation/spotmap/cmd/spotmap/cmd/version"
	"github.com/agentstation/spotmap/internal/server"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(regions.NewCommand(a))
	rootCmd.AddCommand(spots.NewCommand(a))
	rootCmd.AddCommand(categories.NewCommand(a))
	rootCmd.AddCommand(navigate.NewCommand(a))
	rootCmd.AddCommand(serve.NewCommand(a, a.serverDefaults))

	// Management commands
	rootCmd.AddCommand(validate.NewCommand(a))
	rootCmd.AddCommand(generate.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
}

// serverDefaults turns the server section of the config into the
// defaults of the serve flags.
func (a *App) serverDefaults() server.Config {
	cfg := server.DefaultConfig()
	s := a.config.Server

	if s.Host != "" {
		cfg.Host = s.Host
	}
	if s.Port != 0 {
		cfg.Port = s.Port
	}
	if s.PathPrefix != "" {
		cfg.PathPrefix = s.PathPrefix
	}
	if s.AuthHeader != "" {
		cfg.AuthHeader = s.AuthHeader
	}
	if s.CacheTTL > 0 {
		cfg.CacheTTL = s.CacheTTL
	}
	cfg.CORSEnabled = s.CORS
	cfg.CORSOrigins = s.CORSOrigins
	cfg.AuthEnabled = s.Auth
	cfg.APIKey = s.APIKey
	cfg.RateLimit = s.RateLimit
	cfg.RateBurst = s.RateBurst
	cfg.TrustProxy = s.TrustProxy
	cfg.MetricsEnabled = s.Metrics
	return cfg
}
