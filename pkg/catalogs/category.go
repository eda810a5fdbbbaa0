package catalogs

import "slices"

// Category classifies a spot.
type Category string

// String returns the string representation of a Category.
func (c Category) String() string {
	return string(c)
}

// Spot categories.
const (
	CategorySightseeing   Category = "sightseeing"
	CategoryFood          Category = "food"
	CategoryAccommodation Category = "accommodation"
	CategoryTransport     Category = "transport"
	CategoryEntertainment Category = "entertainment"
	CategoryNature        Category = "nature"
	CategoryTemple        Category = "temple"
	CategoryCultural      Category = "cultural"
	CategoryShopping      Category = "shopping"
	CategoryModern        Category = "modern"
	CategoryLandmark      Category = "landmark"
)

var categories = []Category{
	CategorySightseeing,
	CategoryFood,
	CategoryAccommodation,
	CategoryTransport,
	CategoryEntertainment,
	CategoryNature,
	CategoryTemple,
	CategoryCultural,
	CategoryShopping,
	CategoryModern,
	CategoryLandmark,
}

// Categories returns every category a spot may carry.
func Categories() []Category {
	return slices.Clone(categories)
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	return slices.Contains(categories, c)
}

// CategoryStrings returns the known categories as strings, for flag help and errors.
func CategoryStrings() []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}
