package query

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/agentstation/spotmap/pkg/catalogs"
)

// DefaultLanguage is the collation used for name ordering. Spot names are
// written in Japanese script.
var DefaultLanguage = language.Japanese

// Option configures Apply and Engine.
type Option func(*options)

type options struct {
	lang language.Tag
}

func defaultOptions() options {
	return options{lang: DefaultLanguage}
}

// WithLanguage sets the collation language for name ordering.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
	}
}

// Apply filters and orders spots:
//
//  1. keep spots in the filter's region unless it is All;
//  2. keep spots of the filter's category unless it is All;
//  3. sort by rating descending, or by name ascending using collation.
//
// Both sorts are stable, so equal keys keep their input order. The input
// slice is not modified. An empty result is returned as an empty, non-nil slice.
func Apply(spots []*catalogs.Spot, f Filter, opts ...Option) []*catalogs.Spot {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]*catalogs.Spot, 0, len(spots))
	for _, s := range spots {
		if !f.AllRegions() && s.Prefecture != f.Region {
			continue
		}
		if !f.AllCategories() && s.Category != f.Category {
			continue
		}
		out = append(out, s)
	}

	switch f.Sort {
	case SortName:
		sortByName(out, o.lang)
	default:
		sortByRating(out)
	}
	return out
}

func sortByRating(spots []*catalogs.Spot) {
	slices.SortStableFunc(spots, func(a, b *catalogs.Spot) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
}

// sortByName orders by collation key. A collator is not safe for concurrent
// use, so each call builds its own.
func sortByName(spots []*catalogs.Spot, lang language.Tag) {
	c := collate.New(lang)
	slices.SortStableFunc(spots, func(a, b *catalogs.Spot) int {
		return c.CompareString(a.Name, b.Name)
	})
}
