package catalogs

import (
	"io/fs"
	"os"

	"github.com/agentstation/spotmap/internal/embedded"
)

type catalogOptions struct {
	readFS fs.FS
}

func (c *catalogOptions) apply(opts ...Option) *catalogOptions {
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func catalogDefaults() *catalogOptions {
	return &catalogOptions{}
}

// Option configures a catalog.
type Option func(*catalogOptions)

// WithFS reads catalog files from fsys. The root must contain regions.yaml.
func WithFS(fsys fs.FS) Option {
	return func(c *catalogOptions) {
		c.readFS = fsys
	}
}

// WithPath reads catalog files from a directory.
func WithPath(path string) Option {
	return func(c *catalogOptions) {
		c.readFS = os.DirFS(path)
	}
}

// WithEmbedded reads the catalog compiled into the binary.
func WithEmbedded() Option {
	return func(c *catalogOptions) {
		catalogFS, err := fs.Sub(embedded.FS, "catalog")
		if err != nil {
			c.readFS = embedded.FS
			return
		}
		c.readFS = catalogFS
	}
}
