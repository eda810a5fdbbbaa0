package catalogs

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/agentstation/spotmap/pkg/constants"
	"github.com/agentstation/spotmap/pkg/errors"
)

// SpotID is the unique identifier of a spot.
type SpotID string

// String returns the string representation of a SpotID.
func (id SpotID) String() string {
	return string(id)
}

// Spot is a single tourist destination.
type Spot struct {
	ID          SpotID   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`     // Native-script display name
	NameEn      string   `json:"nameEn" yaml:"nameEn"` // English display name
	Description string   `json:"description" yaml:"description"`
	Category    Category `json:"category" yaml:"category"`
	Prefecture  RegionID `json:"prefecture" yaml:"prefecture"` // Owning region
	Rating      float64  `json:"rating" yaml:"rating"`         // 0.0 - 5.0
	Location    Location `json:"location" yaml:"location"`

	// Ordered display lists
	Highlights []string `json:"highlights,omitempty" yaml:"highlights,omitempty"`
	Hashtags   []string `json:"hashtags,omitempty" yaml:"hashtags,omitempty"`
	Keywords   []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Tips       []string `json:"tips,omitempty" yaml:"tips,omitempty"`
	BestSeason []string `json:"bestSeason,omitempty" yaml:"bestSeason,omitempty"`

	Entrance  Entrance `json:"entrance" yaml:"entrance"`
	Access    Access   `json:"access" yaml:"access"`
	VisitTime string   `json:"visitTime,omitempty" yaml:"visitTime,omitempty"`
	Image     string   `json:"image,omitempty" yaml:"image,omitempty"`
}

// Location is where a spot is and how to find it.
type Location struct {
	Address     string      `json:"address" yaml:"address"`
	Station     string      `json:"station" yaml:"station"` // Nearest station
	Coordinates Coordinates `json:"coordinates" yaml:"coordinates"`
}

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Entrance holds the admission fee and opening hours as authored text.
type Entrance struct {
	Fee   string `json:"fee" yaml:"fee"`
	Hours string `json:"hours" yaml:"hours"`
}

// Access holds directions by train and on foot.
type Access struct {
	Train   string `json:"train" yaml:"train"`
	Walking string `json:"walking" yaml:"walking"`
}

// Point returns the spot position as an orb point (lng, lat).
func (s *Spot) Point() orb.Point {
	return orb.Point{s.Location.Coordinates.Lng, s.Location.Coordinates.Lat}
}

// DisplayHighlights returns at most the first three highlights.
func (s *Spot) DisplayHighlights() []string {
	if len(s.Highlights) <= constants.MaxDisplayHighlights {
		return s.Highlights
	}
	return s.Highlights[:constants.MaxDisplayHighlights]
}

// Validate checks the fields of a spot that do not depend on the rest of the catalog.
func (s *Spot) Validate() error {
	if s.ID == "" {
		return errors.NewValidationError("id", s.ID, "spot id cannot be empty")
	}
	if s.Name == "" {
		return &errors.ValidationError{Field: "name", Message: fmt.Sprintf("spot %s has no name", s.ID)}
	}
	if !s.Category.IsValid() {
		err := errors.NewInvalidValueError("category", string(s.Category), CategoryStrings())
		err.Message = fmt.Sprintf("spot %s: %s", s.ID, err.Message)
		return err
	}
	if s.Prefecture == "" {
		return &errors.ValidationError{Field: "prefecture", Message: fmt.Sprintf("spot %s has no prefecture", s.ID)}
	}
	if s.Rating < 0 || s.Rating > constants.MaxRatingValue {
		return &errors.ValidationError{
			Field:   "rating",
			Value:   s.Rating,
			Message: fmt.Sprintf("spot %s rating %.1f is outside 0-5", s.ID, s.Rating),
		}
	}
	c := s.Location.Coordinates
	if c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
		return &errors.ValidationError{
			Field:   "location.coordinates",
			Value:   c,
			Message: fmt.Sprintf("spot %s coordinates (%f, %f) out of range", s.ID, c.Lat, c.Lng),
		}
	}
	return nil
}
