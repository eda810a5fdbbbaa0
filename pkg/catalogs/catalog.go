// Package catalogs provides the read-only catalog of tourist spots and the
// regions that group them. A catalog is loaded once, from the embedded YAML
// data or from a directory with the same layout, and never changes after.
//
//	cat, err := catalogs.New(catalogs.WithEmbedded())
//	if err != nil {
//	    return err
//	}
//	spot, err := cat.Spot("sensoji")
//	if errors.IsNotFound(err) {
//	    // render a placeholder
//	}
package catalogs

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/agentstation/spotmap/pkg/errors"
)

// Compile-time interface check.
var _ Reader = (*catalog)(nil)

// catalog is the Reader implementation.
type catalog struct {
	regions  *Regions
	spots    *Spots
	byRegion map[RegionID][]*Spot
}

// New loads a catalog using the given options. With no source option the
// embedded catalog is used.
func New(opts ...Option) (Reader, error) {
	options := catalogDefaults().apply(opts...)
	if options.readFS == nil {
		WithEmbedded()(options)
	}

	regions, spots, err := load(options.readFS)
	if err != nil {
		return nil, err
	}
	cat, err := build(regions, spots)
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// NewFromRecords builds a catalog from in-memory records, keeping their order.
// The records are copied.
func NewFromRecords(regions []Region, spots []Spot) (Reader, error) {
	rs := make([]*Region, len(regions))
	for i := range regions {
		r := regions[i]
		rs[i] = &r
	}
	ss := make([]*Spot, len(spots))
	for i := range spots {
		s := spots[i]
		ss[i] = &s
	}
	cat, err := build(rs, sourced(ss, ""))
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// sourcedSpot remembers which file a spot was read from for error messages.
type sourcedSpot struct {
	spot   *Spot
	source string
}

func sourced(spots []*Spot, source string) []sourcedSpot {
	out := make([]sourcedSpot, len(spots))
	for i, s := range spots {
		out[i] = sourcedSpot{spot: s, source: source}
	}
	return out
}

// build indexes and validates the records. All problems are reported together.
func build(regions []*Region, spots []sourcedSpot) (*catalog, error) {
	cat := &catalog{
		regions:  newRegions(len(regions)),
		spots:    newSpots(len(spots)),
		byRegion: make(map[RegionID][]*Spot, len(regions)),
	}

	var errs []error
	for _, r := range regions {
		if err := r.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if err := cat.regions.add(r); err != nil {
			errs = append(errs, err)
		}
	}

	for _, s := range spots {
		if err := s.spot.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if !cat.regions.Has(s.spot.Prefecture) {
			errs = append(errs, &errors.ValidationError{
				Field:   "prefecture",
				Value:   string(s.spot.Prefecture),
				Message: fmt.Sprintf("spot %s references unknown region %q", s.spot.ID, s.spot.Prefecture),
			})
			continue
		}
		if err := cat.spots.add(s.spot, s.source); err != nil {
			errs = append(errs, err)
			continue
		}
		cat.byRegion[s.spot.Prefecture] = append(cat.byRegion[s.spot.Prefecture], s.spot)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cat, nil
}

// Spots returns the spot collection.
func (cat *catalog) Spots() *Spots {
	return cat.spots
}

// Regions returns the region collection.
func (cat *catalog) Regions() *Regions {
	return cat.regions
}

// AllSpots returns every spot in definition order.
func (cat *catalog) AllSpots() []*Spot {
	return cat.spots.List()
}

// AllRegions returns every region in definition order.
func (cat *catalog) AllRegions() []*Region {
	return cat.regions.List()
}

// Spot returns a spot by id.
func (cat *catalog) Spot(id SpotID) (*Spot, error) {
	if spot, ok := cat.spots.Get(id); ok {
		return spot, nil
	}
	return nil, &errors.NotFoundError{Resource: "spot", ID: string(id)}
}

// Region returns a region by id.
func (cat *catalog) Region(id RegionID) (*Region, error) {
	if region, ok := cat.regions.Get(id); ok {
		return region, nil
	}
	return nil, &errors.NotFoundError{Resource: "region", ID: string(id)}
}

// SpotsInRegion returns the spots whose prefecture is id, in definition order.
func (cat *catalog) SpotsInRegion(id RegionID) ([]*Spot, error) {
	if !cat.regions.Has(id) {
		return nil, &errors.NotFoundError{Resource: "region", ID: string(id)}
	}
	return append([]*Spot(nil), cat.byRegion[id]...), nil
}

// TopSpots resolves a region's curated list. Ids that do not resolve are
// skipped; Audit reports them.
func (cat *catalog) TopSpots(id RegionID) ([]*Spot, error) {
	region, err := cat.Region(id)
	if err != nil {
		return nil, err
	}
	top := make([]*Spot, 0, len(region.TopSpots))
	for _, sid := range region.TopSpots {
		if spot, ok := cat.spots.Get(sid); ok {
			top = append(top, spot)
		}
	}
	return top, nil
}

// Bounds returns the bounding box of a region's spots.
// A region without spots yields an empty bound at the origin.
func (cat *catalog) Bounds(id RegionID) (orb.Bound, error) {
	spots, err := cat.SpotsInRegion(id)
	if err != nil {
		return orb.Bound{}, err
	}
	return BoundOf(spots), nil
}
