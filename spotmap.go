// Package spotmap provides the main entry point for browsing the tourist
// spot catalog. It loads the catalog once and exposes the query engine,
// the selection controllers and the home screen built on it.
//
// The catalog is immutable after load, so a Client is safe for concurrent
// use. Selection controllers are not; create one per caller.
//
// Example usage:
//
//	sm, err := spotmap.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Temples in Tokyo, best rated first
//	f, err := sm.Parse("tokyo", "temple", "rating")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, spot := range sm.Query(f) {
//	    fmt.Printf("%s %.1f\n", spot.Name, spot.Rating)
//	}
//
//	// A listing screen opened from a category shortcut
//	ctrl := sm.Selection("all", selection.WithInitialCategory("nature"))
//	view := ctrl.View()
package spotmap

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/errors"
	"github.com/agentstation/spotmap/pkg/query"
	"github.com/agentstation/spotmap/pkg/selection"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Catalog provides read access to the catalog.
type Catalog interface {
	Catalog() (catalogs.Reader, error)
}

// Querier filters and orders spots.
type Querier interface {
	// Parse turns raw filter input into a Filter. Invalid fields fall back
	// to their defaults and are reported in the error.
	Parse(region, category, sort string) (query.Filter, error)

	// Query returns the spots matching f.
	Query(f query.Filter) []*catalogs.Spot
}

// Selector builds the browsing screens.
type Selector interface {
	// Home returns the region selection screen.
	Home() selection.HomeView

	// Selection creates a listing controller for a region context.
	Selection(regionContext string, opts ...selection.Option) *selection.Controller
}

// Client provides access to the spot catalog.
type Client interface {
	Catalog
	Querier
	Selector

	// Engine returns the underlying query engine.
	Engine() *query.Engine
}

// client is the internal implementation of the Client interface.
type client struct {
	options *options
	catalog catalogs.Reader
	engine  *query.Engine
	logger  *zerolog.Logger
}

// New creates a new Client. Without options the embedded catalog is used.
func New(opts ...Option) (Client, error) {
	o, err := defaults().apply(opts...)
	if err != nil {
		return nil, err
	}

	cat, err := loadCatalog(o)
	if err != nil {
		return nil, errors.WrapResource("load", "catalog", o.catalogPath, err)
	}

	var engineOpts []query.Option
	if o.language != nil {
		engineOpts = append(engineOpts, query.WithLanguage(*o.language))
	}

	o.logger.Debug().
		Int("regions", cat.Regions().Len()).
		Int("spots", cat.Spots().Len()).
		Msg("Catalog loaded")

	return &client{
		options: o,
		catalog: cat,
		engine:  query.NewEngine(cat, engineOpts...),
		logger:  o.logger,
	}, nil
}

func loadCatalog(o *options) (catalogs.Reader, error) {
	switch {
	case o.catalog != nil:
		return o.catalog, nil
	case o.catalogFS != nil:
		return catalogs.New(catalogs.WithFS(o.catalogFS))
	case o.catalogPath != "":
		return catalogs.New(catalogs.WithPath(o.catalogPath))
	default:
		return catalogs.New()
	}
}

// Catalog returns the loaded catalog.
func (c *client) Catalog() (catalogs.Reader, error) {
	return c.catalog, nil
}

// Engine returns the query engine.
func (c *client) Engine() *query.Engine {
	return c.engine
}

// Parse validates raw filter input against the catalog's regions.
func (c *client) Parse(region, category, sort string) (query.Filter, error) {
	return c.engine.Parse(region, category, sort)
}

// Query returns the spots matching f.
func (c *client) Query(f query.Filter) []*catalogs.Spot {
	return c.engine.Query(f)
}

// Home returns the region selection screen.
func (c *client) Home() selection.HomeView {
	return selection.Home(c.catalog)
}

// Selection creates a listing controller. The client logger is used unless
// opts set another.
func (c *client) Selection(regionContext string, opts ...selection.Option) *selection.Controller {
	opts = append([]selection.Option{selection.WithLogger(*c.logger)}, opts...)
	return selection.New(c.engine, regionContext, opts...)
}
