package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/spotmap"
	"github.com/agentstation/spotmap/pkg/catalogs"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
//
// When only CatalogFunc is set, Spotmap wraps that catalog in a client.
type Mock struct {
	CatalogFunc      func() (catalogs.Reader, error)
	SpotmapFunc      func() (spotmap.Client, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Catalog returns a catalog using the mock function or nil.
func (m *Mock) Catalog() (catalogs.Reader, error) {
	if m.CatalogFunc != nil {
		return m.CatalogFunc()
	}
	return nil, nil
}

// Spotmap returns a client using the mock function, or one built on Catalog.
func (m *Mock) Spotmap() (spotmap.Client, error) {
	if m.SpotmapFunc != nil {
		return m.SpotmapFunc()
	}
	cat, err := m.Catalog()
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return spotmap.New(spotmap.WithLogger(m.Logger()))
	}
	return spotmap.New(spotmap.WithCatalog(cat), spotmap.WithLogger(m.Logger()))
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Application at compile time.
var _ Application = (*Mock)(nil)
