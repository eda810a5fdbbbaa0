// Package query filters and orders catalog spots.
//
// Apply is a pure function over a spot slice and a Filter. Engine binds it
// to a catalog so callers can query by filter alone:
//
//	engine := query.NewEngine(cat)
//	f, err := engine.Parse("tokyo", "all", "rating")
//	spots := engine.Query(f)
package query

import (
	"github.com/agentstation/spotmap/pkg/catalogs"
)

// Engine runs filters against a catalog. It is safe for concurrent use.
type Engine struct {
	catalog catalogs.Reader
	opts    []Option
}

// NewEngine creates an engine over cat.
func NewEngine(cat catalogs.Reader, opts ...Option) *Engine {
	return &Engine{catalog: cat, opts: opts}
}

// Catalog returns the catalog the engine queries.
func (e *Engine) Catalog() catalogs.Reader {
	return e.catalog
}

// Query applies f to every spot in the catalog.
func (e *Engine) Query(f Filter) []*catalogs.Spot {
	return Apply(e.catalog.AllSpots(), f, e.opts...)
}

// Parse validates raw filter input against the catalog's regions. See ParseFilter.
func (e *Engine) Parse(region, category, sort string) (Filter, error) {
	return ParseFilter(e.catalog.Regions(), region, category, sort)
}
