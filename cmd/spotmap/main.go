// Package main provides the entry point for the spotmap CLI tool.
package main

import (
	"context"
	"os"

	"github.com/agentstation/spotmap/cmd/spotmap/app"
	"github.com/agentstation/spotmap/pkg/constants"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	runErr := application.Execute(ctx, os.Args[1:])

	// The signal context may already be cancelled, so shut down on a fresh one.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer shutdownCancel()
	if err := application.Shutdown(shutdownCtx); err != nil {
		application.Logger().Error().Err(err).Msg("Shutdown error")
	}

	if runErr != nil {
		cancel()
		shutdownCancel()
		app.ExitOnError(runErr)
	}
}
