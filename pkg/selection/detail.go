package selection

import (
	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/navigation"
)

// DetailView is the spot detail screen: the full record, its category
// display metadata and where "back" leads.
type DetailView struct {
	*catalogs.Spot `yaml:",inline"`
	CategoryInfo   CategoryOption    `json:"categoryInfo" yaml:"categoryInfo"`
	RegionName     string            `json:"regionName" yaml:"regionName"`
	Back           navigation.Target `json:"back" yaml:"back"`
}

// Detail resolves the detail screen of a spot. Unknown ids fail with
// errors.NotFoundError. Back leads to the spot's region listing, or to the
// every-region listing when the region cannot be addressed.
func Detail(cat catalogs.Reader, id catalogs.SpotID) (*DetailView, error) {
	spot, err := cat.Spot(id)
	if err != nil {
		return nil, err
	}

	view := &DetailView{
		Spot:         spot,
		CategoryInfo: LookupCategory(spot.Category),
		RegionName:   string(spot.Prefecture),
		Back:         navigation.ForAll(),
	}
	if region, err := cat.Region(spot.Prefecture); err == nil {
		view.RegionName = region.Name
	}
	if back, err := navigation.ForRegion(spot.Prefecture); err == nil {
		view.Back = back
	}
	return view, nil
}
