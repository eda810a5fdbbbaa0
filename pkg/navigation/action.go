package navigation

import (
	"strings"

	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/errors"
)

// Action names a selection that leads somewhere.
type Action string

// Actions a user can take.
const (
	ActionHome     Action = "home"     // back to region selection
	ActionRegion   Action = "region"   // pick a region card
	ActionAll      Action = "all"      // "view all"
	ActionCategory Action = "category" // category shortcut
	ActionSpot     Action = "spot"     // pick a spot card
)

// Actions returns the supported actions.
func Actions() []Action {
	return []Action{ActionHome, ActionRegion, ActionAll, ActionCategory, ActionSpot}
}

func actionStrings() []string {
	actions := Actions()
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = string(a)
	}
	return out
}

// FromAction builds the target of an action. Region, category and spot
// take an id; home and all ignore it. Action names are case-insensitive.
func FromAction(action, id string) (Target, error) {
	switch Action(strings.ToLower(strings.TrimSpace(action))) {
	case ActionHome:
		return Home(), nil
	case ActionRegion:
		return ForRegion(catalogs.RegionID(id))
	case ActionAll:
		return ForAll(), nil
	case ActionCategory:
		return ForCategoryShortcut(catalogs.Category(id))
	case ActionSpot:
		return ForSpot(catalogs.SpotID(id))
	default:
		return Target{}, errors.NewInvalidValueError("action", action, actionStrings())
	}
}

// Resolves reports whether every identifier in t names a catalog record.
// Targets are built without this check; views call it to decide between
// rendering and a not-found state.
func Resolves(cat catalogs.Reader, t Target) bool {
	switch t.View {
	case ViewRegionList:
		return true
	case ViewSpotList:
		if r := t.Region(); r != AllRegions && !cat.Regions().Has(catalogs.RegionID(r)) {
			return false
		}
		if c := t.Category(); c != "" && !catalogs.Category(c).IsValid() {
			return false
		}
		return true
	case ViewSpotDetail:
		return cat.Spots().Has(t.SpotID())
	default:
		return false
	}
}
