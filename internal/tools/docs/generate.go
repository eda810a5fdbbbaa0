// Package docs renders the catalog as a set of markdown pages: a region
// index and one page per region with its spots ordered by rating.
package docs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonboulle/clockwork"

	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/constants"
	"github.com/agentstation/spotmap/pkg/query"
)

// IndexFile is the name of the region index page.
const IndexFile = "README.md"

// Generator handles documentation generation
type Generator struct {
	outputDir string
	verbose   bool
	out       io.Writer
	clock     clockwork.Clock
}

// Option is a functional option for configuring the Generator
type Option func(*Generator)

// WithOutputDir sets the output directory for generated documentation
func WithOutputDir(dir string) Option {
	return func(g *Generator) {
		g.outputDir = dir
	}
}

// WithVerbose enables progress messages
func WithVerbose(verbose bool) Option {
	return func(g *Generator) {
		g.verbose = verbose
	}
}

// WithOutput sets where progress messages are written.
func WithOutput(w io.Writer) Option {
	return func(g *Generator) {
		g.out = w
	}
}

// WithClock sets the clock used for the "last updated" stamp.
func WithClock(clock clockwork.Clock) Option {
	return func(g *Generator) {
		g.clock = clock
	}
}

// New creates a new documentation generator
func New(opts ...Option) *Generator {
	g := &Generator{
		outputDir: constants.DefaultDocsPath,
		out:       os.Stdout,
		clock:     clockwork.NewRealClock(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// OutputDir returns the directory pages are written to.
func (g *Generator) OutputDir() string {
	return g.outputDir
}

// Generate writes the index page and one page per region. It returns the
// paths of the written files in write order.
func (g *Generator) Generate(ctx context.Context, cat catalogs.Reader) ([]string, error) {
	g.logf("📝 Generating documentation in %s...\n", g.outputDir)

	if err := os.MkdirAll(g.outputDir, constants.DirPermissions); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", g.outputDir, err)
	}

	engine := query.NewEngine(cat)
	var written []string

	index := filepath.Join(g.outputDir, IndexFile)
	if err := g.writeFile(index, func(w io.Writer) error {
		return g.writeIndex(w, cat, engine)
	}); err != nil {
		return written, fmt.Errorf("generating catalog index: %w", err)
	}
	written = append(written, index)

	for _, region := range cat.AllRegions() {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		path := filepath.Join(g.outputDir, RegionFile(region.ID))
		if err := g.writeFile(path, func(w io.Writer) error {
			return g.writeRegion(w, cat, engine, region)
		}); err != nil {
			return written, fmt.Errorf("generating region %s: %w", region.ID, err)
		}
		written = append(written, path)
		g.logf("  %s\n", path)
	}

	g.logf("✅ Documentation generation complete! (%d files)\n", len(written))
	return written, nil
}

// RegionFile is the page name of a region.
func RegionFile(id catalogs.RegionID) string {
	return string(id) + ".md"
}

func (g *Generator) writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := render(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (g *Generator) logf(format string, args ...any) {
	if g.verbose && g.out != nil {
		fmt.Fprintf(g.out, format, args...)
	}
}
