package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/query"
)

func TestCategories(t *testing.T) {
	opts := Categories()
	require.Len(t, opts, 7)
	assert.Equal(t, query.All, opts[0].ID)

	want := []string{"all", "landmark", "temple", "nature", "entertainment", "cultural", "modern"}
	for i, opt := range opts {
		assert.Equal(t, want[i], opt.ID)
		assert.NotEmpty(t, opt.Name)
		assert.NotEmpty(t, opt.Glyph)
		assert.False(t, opt.Fallback)
	}

	opts[0].Name = "changed"
	assert.Equal(t, "すべて", Categories()[0].Name)
}

func TestLookupCategory(t *testing.T) {
	tests := []struct {
		category catalogs.Category
		name     string
		glyph    string
		fallback bool
	}{
		{catalogs.CategoryTemple, "寺社仏閣", "⛩️", false},
		{catalogs.CategoryModern, "モダン", "🏙️", false},
		{catalogs.CategoryFood, "food", FallbackGlyph, true},
		{catalogs.CategoryShopping, "shopping", FallbackGlyph, true},
		{catalogs.Category("castle"), "castle", FallbackGlyph, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			opt := LookupCategory(tt.category)
			assert.Equal(t, string(tt.category), opt.ID)
			assert.Equal(t, tt.name, opt.Name)
			assert.Equal(t, tt.glyph, opt.Glyph)
			assert.Equal(t, tt.fallback, opt.Fallback)
		})
	}
}

func TestNewCard_FallbackCategory(t *testing.T) {
	spot := catalogs.TestSpot(t, "market", catalogs.RegionTokyo, catalogs.WithCategory(catalogs.CategoryFood))
	spot.Highlights = []string{"one", "two", "three", "four"}

	card := NewCard(&spot)
	assert.Equal(t, FallbackGlyph, card.Category.Glyph)
	assert.Equal(t, []string{"one", "two", "three"}, card.Highlights)
	assert.Equal(t, "Test station", card.Station)
}
