// Package selection holds the state of a spot listing screen: the region
// context, the chosen category and the sort key, and the list they produce.
//
// A Controller recomputes its list on every state change, so Results and
// View always reflect the current selection. Controllers are not safe for
// concurrent use; each caller context owns its own.
package selection

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/navigation"
	"github.com/agentstation/spotmap/pkg/query"
)

// Controller owns the selection state of one listing.
type Controller struct {
	engine   *query.Engine
	filter   query.Filter
	results  []*catalogs.Spot
	warnings []string
	logger   zerolog.Logger
}

// Option configures a Controller.
type Option func(*config)

type config struct {
	category string
	sort     string
	logger   zerolog.Logger
}

// WithInitialCategory opens the listing on a category, as a category
// shortcut does. An invalid value falls back to All and is reported in
// Warnings.
func WithInitialCategory(category string) Option {
	return func(c *config) {
		c.category = category
	}
}

// WithInitialSort opens the listing with a sort key.
func WithInitialSort(sort string) Option {
	return func(c *config) {
		c.sort = sort
	}
}

// WithLogger sets the logger used for fallback diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// New creates a controller for a region context, which is a region id or
// query.All. Invalid input never fails: each bad field takes its default
// and the reason is kept in Warnings.
func New(engine *query.Engine, regionContext string, opts ...Option) *Controller {
	cfg := config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := engine.Parse(regionContext, cfg.category, cfg.sort)
	c := &Controller{engine: engine, filter: f, logger: cfg.logger}
	c.warn(err)
	c.recompute()
	return c
}

// Filter returns the current selection.
func (c *Controller) Filter() query.Filter {
	return c.filter
}

// Results returns the list computed on the last state change.
func (c *Controller) Results() []*catalogs.Spot {
	return c.results
}

// Warnings returns the fallback messages recorded so far.
func (c *Controller) Warnings() []string {
	return c.warnings
}

// SetCategory changes the category. An invalid value selects All and is
// returned as a validation error; the list is recomputed either way.
func (c *Controller) SetCategory(category string) error {
	f, err := c.engine.Parse("", category, "")
	c.filter.Category = f.Category
	return c.apply(err)
}

// SetSort changes the sort key. An invalid value selects rating.
func (c *Controller) SetSort(sort string) error {
	f, err := c.engine.Parse("", "", sort)
	c.filter.Sort = f.Sort
	return c.apply(err)
}

// SetRegion changes the region context. An unknown region selects All.
func (c *Controller) SetRegion(region string) error {
	f, err := c.engine.Parse(region, "", "")
	c.filter.Region = f.Region
	return c.apply(err)
}

// Reset restores category All and rating order, keeping the region context.
func (c *Controller) Reset() {
	c.filter = query.Default(c.filter.Region)
	c.warnings = nil
	c.recompute()
}

func (c *Controller) apply(err error) error {
	c.warn(err)
	c.recompute()
	return err
}

func (c *Controller) warn(err error) {
	if err == nil {
		return
	}
	c.logger.Warn().Err(err).Str("filter", c.filter.String()).Msg("invalid selection, using defaults")
	for _, e := range unwrapAll(err) {
		c.warnings = append(c.warnings, e.Error())
	}
}

func (c *Controller) recompute() {
	c.results = c.engine.Query(c.filter)
}

// View renders the current state.
func (c *Controller) View() ListView {
	view := ListView{
		Filter:   c.filter,
		Spots:    Cards(c.results),
		Count:    len(c.results),
		Back:     navigation.Home(),
		Warnings: c.warnings,
	}

	if !c.filter.AllRegions() {
		if region, err := c.engine.Catalog().Region(c.filter.Region); err == nil {
			view.Region = region
		}
	}

	for _, opt := range categoryTable {
		selected := opt.ID == string(c.filter.Category) ||
			(opt.ID == query.All && c.filter.AllCategories())
		view.Categories = append(view.Categories, CategoryChip{CategoryOption: opt, Selected: selected})
	}

	if len(c.results) == 0 {
		view.Empty = &EmptyState{Message: EmptyMessage, Reset: query.Default(c.filter.Region)}
	}
	return view
}

func unwrapAll(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
