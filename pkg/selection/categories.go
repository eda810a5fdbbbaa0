package selection

import (
	"slices"

	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/query"
)

// FallbackGlyph marks categories that have no entry in the display table.
const FallbackGlyph = "📍"

// CategoryOption is the display metadata of a category.
type CategoryOption struct {
	ID    string `json:"id" yaml:"id"` // category value, or query.All
	Name  string `json:"name" yaml:"name"`
	Glyph string `json:"glyph" yaml:"glyph"`

	// Fallback is set for categories rendered without a table entry.
	Fallback bool `json:"fallback,omitempty" yaml:"fallback,omitempty"`
}

var categoryTable = []CategoryOption{
	{ID: query.All, Name: "すべて", Glyph: "🗾"},
	{ID: string(catalogs.CategoryLandmark), Name: "ランドマーク", Glyph: "🗼"},
	{ID: string(catalogs.CategoryTemple), Name: "寺社仏閣", Glyph: "⛩️"},
	{ID: string(catalogs.CategoryNature), Name: "自然", Glyph: "🌿"},
	{ID: string(catalogs.CategoryEntertainment), Name: "エンタメ", Glyph: "🎢"},
	{ID: string(catalogs.CategoryCultural), Name: "文化", Glyph: "🏛️"},
	{ID: string(catalogs.CategoryModern), Name: "モダン", Glyph: "🏙️"},
}

// Categories returns the category selector options in display order,
// starting with the All option.
func Categories() []CategoryOption {
	return slices.Clone(categoryTable)
}

// LookupCategory returns the display option for a category. Categories
// missing from the table still render, with FallbackGlyph and the raw
// category value as the name.
func LookupCategory(c catalogs.Category) CategoryOption {
	for _, opt := range categoryTable {
		if opt.ID == string(c) {
			return opt
		}
	}
	return CategoryOption{ID: string(c), Name: string(c), Glyph: FallbackGlyph, Fallback: true}
}
