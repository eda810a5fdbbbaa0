package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/navigation"
)

func TestHome(t *testing.T) {
	cat, err := catalogs.New()
	require.NoError(t, err)

	view := Home(cat)

	require.Len(t, view.Regions, 4)
	wantOrder := []catalogs.RegionID{catalogs.RegionTokyo, catalogs.RegionKanagawa, catalogs.RegionChiba, catalogs.RegionSaitama}
	for i, card := range view.Regions {
		assert.Equal(t, wantOrder[i], card.ID)
		assert.Equal(t, "/spots/"+string(card.ID), card.Target.Path())
		require.Len(t, card.Featured, len(card.TopSpots))
		for j, featured := range card.Featured {
			assert.Equal(t, card.TopSpots[j], featured.ID)
		}
	}

	assert.Equal(t, navigation.ForAll(), view.ViewAll)

	require.Len(t, view.Shortcuts, 6)
	assert.Equal(t, "landmark", view.Shortcuts[0].Category.ID)
	assert.Equal(t, "/spots/all?category=landmark", view.Shortcuts[0].Target.Path())
}

func TestHome_MissingTopSpot(t *testing.T) {
	region := catalogs.TestRegion(t, catalogs.RegionTokyo)
	region.TopSpots = []catalogs.SpotID{"gone", "a"}
	cat := catalogs.NewTestCatalog(t,
		[]catalogs.Region{region},
		[]catalogs.Spot{catalogs.TestSpot(t, "a", catalogs.RegionTokyo)},
	)

	view := Home(cat)
	require.Len(t, view.Regions, 1)
	require.Len(t, view.Regions[0].Featured, 1)
	assert.Equal(t, catalogs.SpotID("a"), view.Regions[0].Featured[0].ID)
}
