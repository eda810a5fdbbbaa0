package catalogs

import (
	"slices"

	"github.com/agentstation/spotmap/pkg/errors"
)

// Regions is an ordered collection of regions indexed by id.
// It is never modified after the catalog is built.
type Regions struct {
	order []*Region
	index map[RegionID]*Region
}

func newRegions(capacity int) *Regions {
	return &Regions{
		order: make([]*Region, 0, capacity),
		index: make(map[RegionID]*Region, capacity),
	}
}

func (r *Regions) add(region *Region) error {
	if _, exists := r.index[region.ID]; exists {
		return &errors.DuplicateError{Resource: "region", ID: string(region.ID)}
	}
	r.order = append(r.order, region)
	r.index[region.ID] = region
	return nil
}

// Get returns a region by id and whether it exists.
func (r *Regions) Get(id RegionID) (*Region, bool) {
	region, ok := r.index[id]
	return region, ok
}

// Has reports whether a region with id exists.
func (r *Regions) Has(id RegionID) bool {
	_, ok := r.index[id]
	return ok
}

// Len returns the number of regions.
func (r *Regions) Len() int {
	return len(r.order)
}

// List returns the regions in definition order. The slice is a copy.
func (r *Regions) List() []*Region {
	return slices.Clone(r.order)
}

// IDs returns the region ids in definition order.
func (r *Regions) IDs() []RegionID {
	ids := make([]RegionID, len(r.order))
	for i, region := range r.order {
		ids[i] = region.ID
	}
	return ids
}
