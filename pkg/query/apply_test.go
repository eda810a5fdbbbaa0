package query_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/query"
)

func ids(spots []*catalogs.Spot) []catalogs.SpotID {
	out := make([]catalogs.SpotID, len(spots))
	for i, s := range spots {
		out[i] = s.ID
	}
	return out
}

func TestApply_Scenario(t *testing.T) {
	cat := catalogs.ScenarioCatalog(t)
	spots := cat.AllSpots()

	tests := []struct {
		name   string
		filter query.Filter
		want   []catalogs.SpotID
	}{
		{
			name:   "tokyo by rating",
			filter: query.Filter{Region: "tokyo", Category: query.All, Sort: query.SortRating},
			want:   []catalogs.SpotID{"b", "a"},
		},
		{
			name:   "all regions landmarks by rating",
			filter: query.Filter{Region: query.All, Category: catalogs.CategoryLandmark, Sort: query.SortRating},
			want:   []catalogs.SpotID{"a", "c"},
		},
		{
			name:   "saitama is empty",
			filter: query.Filter{Region: "saitama", Category: query.All, Sort: query.SortRating},
			want:   []catalogs.SpotID{},
		},
		{
			name:   "everything by rating",
			filter: query.Default(query.All),
			want:   []catalogs.SpotID{"b", "a", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.Apply(spots, tt.filter)
			require.NotNil(t, got)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("Apply(%s) mismatch (-want +got):\n%s", tt.filter, diff)
			}
		})
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	cat := catalogs.ScenarioCatalog(t)
	spots := cat.AllSpots()
	before := slices.Clone(spots)

	_ = query.Apply(spots, query.Filter{Region: query.All, Category: query.All, Sort: query.SortRating})
	_ = query.Apply(spots, query.Filter{Region: query.All, Category: query.All, Sort: query.SortName})

	assert.Equal(t, before, spots)
}

func TestApply_RatingSortIsStable(t *testing.T) {
	region := catalogs.TestRegion(t, catalogs.RegionTokyo)
	cat := catalogs.NewTestCatalog(t, []catalogs.Region{region}, []catalogs.Spot{
		catalogs.TestSpot(t, "first-4.3", "tokyo", catalogs.WithRating(4.3)),
		catalogs.TestSpot(t, "top", "tokyo", catalogs.WithRating(4.8)),
		catalogs.TestSpot(t, "second-4.3", "tokyo", catalogs.WithRating(4.3)),
		catalogs.TestSpot(t, "low", "tokyo", catalogs.WithRating(3.0)),
		catalogs.TestSpot(t, "third-4.3", "tokyo", catalogs.WithRating(4.3)),
	})

	got := query.Apply(cat.AllSpots(), query.Default(query.All))
	assert.Equal(t, []catalogs.SpotID{"top", "first-4.3", "second-4.3", "third-4.3", "low"}, ids(got))
}

// Names are native-script text. Codepoint order puts hiragana before
// katakana, while Japanese collation interleaves the kana by reading.
func TestApply_NameSortUsesCollation(t *testing.T) {
	region := catalogs.TestRegion(t, catalogs.RegionTokyo)
	cat := catalogs.NewTestCatalog(t, []catalogs.Region{region}, []catalogs.Spot{
		catalogs.TestSpot(t, "kawagoe", "tokyo", catalogs.WithSpotName("かわごえ")),
		catalogs.TestSpot(t, "asakusa", "tokyo", catalogs.WithSpotName("アサクサ")),
		catalogs.TestSpot(t, "ikebukuro", "tokyo", catalogs.WithSpotName("いけぶくろ")),
	})

	got := query.Apply(cat.AllSpots(), query.Filter{Sort: query.SortName})
	assert.Equal(t, []catalogs.SpotID{"asakusa", "ikebukuro", "kawagoe"}, ids(got))

	naive := []string{"かわごえ", "アサクサ", "いけぶくろ"}
	slices.Sort(naive)
	assert.Equal(t, []string{"いけぶくろ", "かわごえ", "アサクサ"}, naive, "codepoint order differs from collation order")
}

func TestApply_NameSortLatin(t *testing.T) {
	region := catalogs.TestRegion(t, catalogs.RegionTokyo)
	cat := catalogs.NewTestCatalog(t, []catalogs.Region{region}, []catalogs.Spot{
		catalogs.TestSpot(t, "b", "tokyo", catalogs.WithSpotName("banana")),
		catalogs.TestSpot(t, "a", "tokyo", catalogs.WithSpotName("Apple")),
		catalogs.TestSpot(t, "c", "tokyo", catalogs.WithSpotName("cherry")),
	})

	got := query.Apply(cat.AllSpots(), query.Filter{Sort: query.SortName}, query.WithLanguage(language.English))
	assert.Equal(t, []catalogs.SpotID{"a", "b", "c"}, ids(got))
}

func TestApply_NameSortIsStableForEqualNames(t *testing.T) {
	region := catalogs.TestRegion(t, catalogs.RegionTokyo)
	cat := catalogs.NewTestCatalog(t, []catalogs.Region{region}, []catalogs.Spot{
		catalogs.TestSpot(t, "second", "tokyo", catalogs.WithSpotName("大仏")),
		catalogs.TestSpot(t, "first", "tokyo", catalogs.WithSpotName("あ")),
		catalogs.TestSpot(t, "third", "tokyo", catalogs.WithSpotName("大仏")),
	})

	got := query.Apply(cat.AllSpots(), query.Filter{Sort: query.SortName})
	assert.Equal(t, []catalogs.SpotID{"first", "second", "third"}, ids(got))
}

// Properties checked over the embedded catalog for every filter combination.
func TestApply_EmbeddedCatalogProperties(t *testing.T) {
	cat, err := catalogs.New()
	require.NoError(t, err)
	all := cat.AllSpots()
	collator := collate.New(query.DefaultLanguage)

	regionValues := []catalogs.RegionID{query.All}
	regionValues = append(regionValues, cat.Regions().IDs()...)
	categoryValues := []catalogs.Category{query.All}
	categoryValues = append(categoryValues, catalogs.Categories()...)

	for _, region := range regionValues {
		for _, category := range categoryValues {
			for _, sortKey := range query.SortKeys() {
				f := query.Filter{Region: region, Category: category, Sort: sortKey}
				got := query.Apply(all, f)

				if region == query.All && category == query.All {
					assert.ElementsMatch(t, all, got, "%s should be a permutation", f)
				}
				for _, s := range got {
					if region != query.All {
						assert.Equal(t, region, s.Prefecture, f.String())
					}
					if category != query.All {
						assert.Equal(t, category, s.Category, f.String())
					}
				}
				for i := 1; i < len(got); i++ {
					prev, cur := got[i-1], got[i]
					switch sortKey {
					case query.SortRating:
						assert.GreaterOrEqual(t, prev.Rating, cur.Rating, f.String())
						if prev.Rating == cur.Rating {
							assert.Less(t, slices.Index(all, prev), slices.Index(all, cur), "stable order for %s", f)
						}
					case query.SortName:
						assert.LessOrEqual(t, collator.CompareString(prev.Name, cur.Name), 0, f.String())
					}
				}

				again := query.Apply(all, f)
				assert.Equal(t, got, again, "idempotent %s", f)
			}
		}
	}
}

func TestApply_ZeroFilterMeansEverything(t *testing.T) {
	cat := catalogs.ScenarioCatalog(t)
	got := query.Apply(cat.AllSpots(), query.Filter{})
	assert.Equal(t, []catalogs.SpotID{"b", "a", "c"}, ids(got))
}
