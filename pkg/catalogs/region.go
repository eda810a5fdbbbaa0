package catalogs

import (
	"fmt"

	"github.com/agentstation/spotmap/pkg/errors"
)

// RegionID is the unique identifier of a region.
type RegionID string

// String returns the string representation of a RegionID.
func (id RegionID) String() string {
	return string(id)
}

// Regions shipped with the embedded catalog.
const (
	RegionTokyo    RegionID = "tokyo"
	RegionKanagawa RegionID = "kanagawa"
	RegionChiba    RegionID = "chiba"
	RegionSaitama  RegionID = "saitama"
)

// Region is an administrative area that groups spots.
type Region struct {
	ID          RegionID    `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	NameEn      string      `json:"nameEn" yaml:"nameEn"`
	Description string      `json:"description" yaml:"description"`
	Image       string      `json:"image,omitempty" yaml:"image,omitempty"`
	Color       string      `json:"color,omitempty" yaml:"color,omitempty"` // Theme token
	Icon        string      `json:"icon,omitempty" yaml:"icon,omitempty"`
	Stats       RegionStats `json:"stats" yaml:"stats"`
	TopSpots    []SpotID    `json:"topSpots,omitempty" yaml:"topSpots,omitempty"` // Curated, ordered
}

// RegionStats is authored display text. None of it is computed from the spot collection.
type RegionStats struct {
	Population string `json:"population" yaml:"population"`
	Area       string `json:"area" yaml:"area"`
	Spots      string `json:"spots" yaml:"spots"`
}

// Validate checks the fields of a region.
func (r *Region) Validate() error {
	if r.ID == "" {
		return errors.NewValidationError("id", r.ID, "region id cannot be empty")
	}
	if r.Name == "" {
		return &errors.ValidationError{Field: "name", Message: fmt.Sprintf("region %s has no name", r.ID)}
	}
	return nil
}
