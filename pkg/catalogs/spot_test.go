package catalogs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/spotmap/pkg/catalogs"
)

func TestSpot_DisplayHighlights(t *testing.T) {
	tests := []struct {
		name       string
		highlights []string
		want       []string
	}{
		{"none", nil, nil},
		{"fewer than three", []string{"a", "b"}, []string{"a", "b"}},
		{"exactly three", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"truncated", []string{"a", "b", "c", "d", "e"}, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := catalogs.Spot{Highlights: tt.highlights}
			assert.Equal(t, tt.want, s.DisplayHighlights())
		})
	}
}

func TestSpot_Point(t *testing.T) {
	s := catalogs.TestSpot(t, "x", catalogs.RegionTokyo, catalogs.WithCoordinates(35.6586, 139.7454))
	p := s.Point()
	assert.Equal(t, 139.7454, p.Lon())
	assert.Equal(t, 35.6586, p.Lat())
}

func TestCategory_IsValid(t *testing.T) {
	for _, c := range catalogs.Categories() {
		assert.True(t, c.IsValid(), c)
	}
	assert.Len(t, catalogs.Categories(), 11)
	assert.False(t, catalogs.Category("all").IsValid())
	assert.False(t, catalogs.Category("").IsValid())
	assert.False(t, catalogs.Category("Temple").IsValid())
}
