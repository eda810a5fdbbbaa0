package catalogs

import "testing"

// TestRegion creates a region with sensible defaults.
// The t.Helper() call ensures stack traces point to the test, not this function.
func TestRegion(t testing.TB, id RegionID) Region {
	t.Helper()
	return Region{
		ID:          id,
		Name:        string(id),
		NameEn:      string(id),
		Description: "Test region " + string(id),
		Stats:       RegionStats{Population: "1", Area: "1km²", Spots: "0"},
	}
}

// TestSpotOption is a functional option for configuring a test spot.
type TestSpotOption func(*Spot)

// WithSpotName sets the native display name.
func WithSpotName(name string) TestSpotOption {
	return func(s *Spot) {
		s.Name = name
	}
}

// WithCategory sets the category.
func WithCategory(c Category) TestSpotOption {
	return func(s *Spot) {
		s.Category = c
	}
}

// WithRating sets the rating.
func WithRating(rating float64) TestSpotOption {
	return func(s *Spot) {
		s.Rating = rating
	}
}

// WithCoordinates sets the latitude and longitude.
func WithCoordinates(lat, lng float64) TestSpotOption {
	return func(s *Spot) {
		s.Location.Coordinates = Coordinates{Lat: lat, Lng: lng}
	}
}

// TestSpot creates a landmark spot in region with rating 4.0.
func TestSpot(t testing.TB, id SpotID, region RegionID, opts ...TestSpotOption) Spot {
	t.Helper()
	spot := Spot{
		ID:         id,
		Name:       string(id),
		NameEn:     string(id),
		Category:   CategoryLandmark,
		Prefecture: region,
		Rating:     4.0,
		Location: Location{
			Address:     "Test address",
			Station:     "Test station",
			Coordinates: Coordinates{Lat: 35.68, Lng: 139.76},
		},
	}
	for _, opt := range opts {
		opt(&spot)
	}
	return spot
}

// NewTestCatalog builds a catalog from records and fails the test on error.
func NewTestCatalog(t testing.TB, regions []Region, spots []Spot) Reader {
	t.Helper()
	cat, err := NewFromRecords(regions, spots)
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}
	return cat
}

// ScenarioCatalog is the three-spot catalog used across package tests:
// A (4.3, tokyo, landmark), B (4.5, tokyo, temple), C (4.2, chiba, landmark),
// with an empty saitama region.
func ScenarioCatalog(t testing.TB) Reader {
	t.Helper()
	return NewTestCatalog(t,
		[]Region{
			TestRegion(t, RegionTokyo),
			TestRegion(t, RegionChiba),
			TestRegion(t, RegionSaitama),
		},
		[]Spot{
			TestSpot(t, "a", RegionTokyo, WithRating(4.3), WithCategory(CategoryLandmark)),
			TestSpot(t, "b", RegionTokyo, WithRating(4.5), WithCategory(CategoryTemple)),
			TestSpot(t, "c", RegionChiba, WithRating(4.2), WithCategory(CategoryLandmark)),
		},
	)
}
