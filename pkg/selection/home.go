package selection

import (
	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/navigation"
	"github.com/agentstation/spotmap/pkg/query"
)

// HomeView is the region selection screen.
type HomeView struct {
	Regions   []RegionCard      `json:"regions" yaml:"regions"`
	ViewAll   navigation.Target `json:"viewAll" yaml:"viewAll"`
	Shortcuts []Shortcut        `json:"shortcuts" yaml:"shortcuts"`
}

// RegionCard is a region with its featured spots.
type RegionCard struct {
	*catalogs.Region `yaml:",inline"`
	Featured         []Card            `json:"featured" yaml:"featured"`
	Target           navigation.Target `json:"target" yaml:"target"`
}

// Shortcut opens the every-region listing on a category.
type Shortcut struct {
	Category CategoryOption    `json:"category" yaml:"category"`
	Target   navigation.Target `json:"target" yaml:"target"`
}

// Home builds the region selection screen: regions in catalog order with
// their resolved top spots, the view-all target, and one shortcut per
// category in the display table.
func Home(cat catalogs.Reader) HomeView {
	view := HomeView{ViewAll: navigation.ForAll()}

	for _, region := range cat.AllRegions() {
		view.Regions = append(view.Regions, NewRegionCard(cat, region))
	}

	for _, opt := range categoryTable {
		if opt.ID == query.All {
			continue
		}
		target, err := navigation.ForCategoryShortcut(catalogs.Category(opt.ID))
		if err != nil {
			continue
		}
		view.Shortcuts = append(view.Shortcuts, Shortcut{Category: opt, Target: target})
	}
	return view
}

// NewRegionCard resolves a region's top spots and its listing target.
func NewRegionCard(cat catalogs.Reader, region *catalogs.Region) RegionCard {
	top, _ := cat.TopSpots(region.ID)
	target, err := navigation.ForRegion(region.ID)
	if err != nil {
		target = navigation.Target{View: navigation.ViewSpotList, Params: map[string]string{navigation.ParamRegion: string(region.ID)}}
	}
	return RegionCard{Region: region, Featured: Cards(top), Target: target}
}
