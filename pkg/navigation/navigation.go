// Package navigation turns user selections into view targets.
//
// A Target is a (view, parameters) pair. Identifiers are only checked for
// well-formedness here; resolving them against the catalog, and handling
// not-found, is left to the view that receives the target.
package navigation

import (
	"fmt"
	"maps"
	"net/url"
	"regexp"
	"strings"

	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/errors"
)

// View identifies a screen.
type View string

// Views.
const (
	ViewRegionList View = "region-list"
	ViewSpotList   View = "spot-list"
	ViewSpotDetail View = "spot-detail"
)

// Parameter names.
const (
	ParamRegion   = "region"
	ParamCategory = "category"
	ParamID       = "id"
)

// AllRegions is the region parameter for the every-region listing.
const AllRegions = "all"

var slug = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Target is where a selection leads.
type Target struct {
	View   View              `json:"view" yaml:"view"`
	Params map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
}

// Home is the region selection screen.
func Home() Target {
	return Target{View: ViewRegionList}
}

// ForRegion is the spot listing for one region.
func ForRegion(id catalogs.RegionID) (Target, error) {
	if err := checkID("region", string(id)); err != nil {
		return Target{}, err
	}
	return Target{View: ViewSpotList, Params: map[string]string{ParamRegion: string(id)}}, nil
}

// ForAll is the spot listing across every region.
func ForAll() Target {
	return Target{View: ViewSpotList, Params: map[string]string{ParamRegion: AllRegions}}
}

// ForCategoryShortcut is the every-region listing opened on a category.
func ForCategoryShortcut(category catalogs.Category) (Target, error) {
	if err := checkID("category", string(category)); err != nil {
		return Target{}, err
	}
	return Target{
		View: ViewSpotList,
		Params: map[string]string{
			ParamRegion:   AllRegions,
			ParamCategory: string(category),
		},
	}, nil
}

// ForSpot is the detail screen of one spot.
func ForSpot(id catalogs.SpotID) (Target, error) {
	if err := checkID("spot", string(id)); err != nil {
		return Target{}, err
	}
	return Target{View: ViewSpotDetail, Params: map[string]string{ParamID: string(id)}}, nil
}

func checkID(field, id string) error {
	if id == "" {
		return errors.NewValidationError(field, id, "identifier cannot be empty")
	}
	if !slug.MatchString(id) {
		return errors.NewValidationError(field, id, fmt.Sprintf("identifier %q must be lowercase letters, digits and single hyphens", id))
	}
	return nil
}

// Region returns the region parameter, if any.
func (t Target) Region() string {
	return t.Params[ParamRegion]
}

// Category returns the category parameter, if any.
func (t Target) Category() string {
	return t.Params[ParamCategory]
}

// SpotID returns the spot parameter, if any.
func (t Target) SpotID() catalogs.SpotID {
	return catalogs.SpotID(t.Params[ParamID])
}

// Equal reports whether two targets have the same view and parameters.
func (t Target) Equal(other Target) bool {
	return t.View == other.View && maps.Equal(t.Params, other.Params)
}

// Path encodes the target as a route:
//
//	region-list  /
//	spot-list    /spots/{region}[?category={category}]
//	spot-detail  /spot/{id}
func (t Target) Path() string {
	switch t.View {
	case ViewSpotList:
		p := "/spots/" + url.PathEscape(t.Region())
		if c := t.Category(); c != "" {
			p += "?" + url.Values{ParamCategory: {c}}.Encode()
		}
		return p
	case ViewSpotDetail:
		return "/spot/" + url.PathEscape(string(t.SpotID()))
	default:
		return "/"
	}
}

// String returns the route of the target.
func (t Target) String() string {
	return t.Path()
}

// Parse decodes a route produced by Path.
func Parse(route string) (Target, error) {
	u, err := url.Parse(route)
	if err != nil {
		return Target{}, errors.NewValidationError("route", route, err.Error())
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	switch {
	case len(segments) == 1 && segments[0] == "":
		return Home(), nil
	case len(segments) == 2 && segments[0] == "spots":
		if segments[1] == AllRegions {
			if c := u.Query().Get(ParamCategory); c != "" {
				return ForCategoryShortcut(catalogs.Category(c))
			}
			return ForAll(), nil
		}
		t, err := ForRegion(catalogs.RegionID(segments[1]))
		if err != nil {
			return Target{}, err
		}
		if c := u.Query().Get(ParamCategory); c != "" {
			if err := checkID("category", c); err != nil {
				return Target{}, err
			}
			t.Params[ParamCategory] = c
		}
		return t, nil
	case len(segments) == 2 && segments[0] == "spot":
		return ForSpot(catalogs.SpotID(segments[1]))
	}
	return Target{}, errors.NewValidationError("route", route, "unknown route")
}
