package catalogs

import "github.com/paulmach/orb"

// BoundOf returns the bounding box around the given spots.
func BoundOf(spots []*Spot) orb.Bound {
	if len(spots) == 0 {
		return orb.Bound{}
	}
	points := make(orb.MultiPoint, len(spots))
	for i, s := range spots {
		points[i] = s.Point()
	}
	return points.Bound()
}

// Area is a bounding box in latitude/longitude terms.
type Area struct {
	SouthWest Coordinates `json:"southWest" yaml:"southWest"`
	NorthEast Coordinates `json:"northEast" yaml:"northEast"`
	Center    Coordinates `json:"center" yaml:"center"`
}

// AreaOf converts an orb bound. The zero bound has no area and yields nil.
func AreaOf(b orb.Bound) *Area {
	if b.IsZero() {
		return nil
	}
	c := b.Center()
	return &Area{
		SouthWest: Coordinates{Lat: b.Min.Lat(), Lng: b.Min.Lon()},
		NorthEast: Coordinates{Lat: b.Max.Lat(), Lng: b.Max.Lon()},
		Center:    Coordinates{Lat: c.Lat(), Lng: c.Lon()},
	}
}
