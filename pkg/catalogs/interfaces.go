package catalogs

import "github.com/paulmach/orb"

// Reader provides read-only access to catalog data.
// Returned records are shared and must not be modified.
type Reader interface {
	// Ordered collections
	Spots() *Spots
	Regions() *Regions

	// All records in definition order
	AllSpots() []*Spot
	AllRegions() []*Region

	// Lookups; unknown ids fail with errors.NotFoundError
	Spot(id SpotID) (*Spot, error)
	Region(id RegionID) (*Region, error)

	// Region helpers
	SpotsInRegion(id RegionID) ([]*Spot, error)
	TopSpots(id RegionID) ([]*Spot, error)
	Bounds(id RegionID) (orb.Bound, error)
}
