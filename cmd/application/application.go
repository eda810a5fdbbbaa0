// Package application provides the application interface for spotmap commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            cat, err := app.Catalog()
//	            if err != nil {
//	                return err
//	            }
//	            // ... use catalog
//	            return nil
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    CatalogFunc: func() (catalogs.Reader, error) {
//	        return catalogs.ScenarioCatalog(t), nil
//	    },
//	}
//	cmd := NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/spotmap"
	"github.com/agentstation/spotmap/pkg/catalogs"
)

// Application provides the application interface that commands need.
// The App struct from cmd/spotmap/app implements it.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Catalog returns the loaded catalog. The catalog is immutable and may be shared.
	Catalog() (catalogs.Reader, error)

	// Spotmap returns the spotmap client. It is created once and cached.
	Spotmap() (spotmap.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
