package query

import (
	"fmt"
	"strings"

	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/errors"
)

// All is the sentinel meaning "no restriction" for region and category.
const All = "all"

// SortKey selects the result ordering.
type SortKey string

// String returns the string representation of a SortKey.
func (k SortKey) String() string {
	return string(k)
}

// Sort keys.
const (
	SortRating SortKey = "rating" // descending
	SortName   SortKey = "name"   // ascending, locale-aware
)

// SortKeys returns the supported sort keys.
func SortKeys() []SortKey {
	return []SortKey{SortRating, SortName}
}

// IsValid reports whether k is a supported sort key.
func (k SortKey) IsValid() bool {
	return k == SortRating || k == SortName
}

// Filter is the (region, category, sort) tuple driving a query.
type Filter struct {
	Region   catalogs.RegionID `json:"region" yaml:"region"`     // region id or All
	Category catalogs.Category `json:"category" yaml:"category"` // category or All
	Sort     SortKey           `json:"sort" yaml:"sort"`
}

// Default returns the reset filter for a region context. An empty context means All.
func Default(regionContext catalogs.RegionID) Filter {
	if regionContext == "" {
		regionContext = All
	}
	return Filter{Region: regionContext, Category: All, Sort: SortRating}
}

// AllRegions reports whether the filter spans every region. An unset region counts as All.
func (f Filter) AllRegions() bool {
	return f.Region == All || f.Region == ""
}

// AllCategories reports whether the filter spans every category. An unset category counts as All.
func (f Filter) AllCategories() bool {
	return f.Category == All || f.Category == ""
}

// String renders the filter in a stable form usable as a cache key.
func (f Filter) String() string {
	return fmt.Sprintf("region=%s&category=%s&sort=%s", f.Region, f.Category, f.Sort)
}

// RegionSet reports whether a region id exists. *catalogs.Regions implements it.
type RegionSet interface {
	Has(id catalogs.RegionID) bool
}

// ParseFilter turns raw boundary input into a Filter. Empty values take
// their defaults. Values outside their domain fall back to All (region,
// category) or rating (sort), and every such field is reported in the
// returned error, which matches errors.ErrInvalidInput. The returned filter
// is always usable, even when err is non-nil.
//
// A nil regions set skips the region existence check.
func ParseFilter(regions RegionSet, region, category, sort string) (Filter, error) {
	f := Default(All)
	var errs []error

	switch r := normalize(region); {
	case r == "" || r == All:
	case regions == nil || regions.Has(catalogs.RegionID(r)):
		f.Region = catalogs.RegionID(r)
	default:
		errs = append(errs, errors.NewInvalidValueError("region", region, regionChoices(regions)))
	}

	switch c := normalize(category); {
	case c == "" || c == All:
	case catalogs.Category(c).IsValid():
		f.Category = catalogs.Category(c)
	default:
		errs = append(errs, errors.NewInvalidValueError("category", category, append([]string{All}, catalogs.CategoryStrings()...)))
	}

	switch s := SortKey(normalize(sort)); {
	case s == "":
	case s.IsValid():
		f.Sort = s
	default:
		errs = append(errs, errors.NewInvalidValueError("sort", sort, []string{string(SortRating), string(SortName)}))
	}

	return f, errors.Join(errs...)
}

// Validate checks an already-typed filter. Nothing is changed.
func (f Filter) Validate(regions RegionSet) error {
	_, err := ParseFilter(regions, string(f.Region), string(f.Category), string(f.Sort))
	return err
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func regionChoices(regions RegionSet) []string {
	lister, ok := regions.(interface{ IDs() []catalogs.RegionID })
	if !ok {
		return nil
	}
	choices := []string{All}
	for _, id := range lister.IDs() {
		choices = append(choices, string(id))
	}
	return choices
}
