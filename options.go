package spotmap

import (
	"io/fs"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/errors"
)

// Option is a function that configures a Client.
type Option func(*options) error

type options struct {
	catalogPath string
	catalogFS   fs.FS
	catalog     catalogs.Reader
	logger      *zerolog.Logger
	language    *language.Tag
}

func defaults() *options {
	nop := zerolog.Nop()
	return &options{logger: &nop}
}

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithCatalogPath loads the catalog from a directory on disk instead of
// the embedded data.
func WithCatalogPath(path string) Option {
	return func(o *options) error {
		if path == "" {
			return &errors.ValidationError{Field: "catalog_path", Message: "cannot be empty"}
		}
		o.catalogPath = path
		return nil
	}
}

// WithCatalogFS loads the catalog from a filesystem rooted at the catalog
// directory.
func WithCatalogFS(fsys fs.FS) Option {
	return func(o *options) error {
		o.catalogFS = fsys
		return nil
	}
}

// WithCatalog uses an already loaded catalog.
func WithCatalog(cat catalogs.Reader) Option {
	return func(o *options) error {
		if cat == nil {
			return &errors.ValidationError{Field: "catalog", Message: "cannot be nil"}
		}
		o.catalog = cat
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger != nil {
			o.logger = logger
		}
		return nil
	}
}

// WithLanguage sets the collation language for name ordering.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) error {
		o.language = &tag
		return nil
	}
}
