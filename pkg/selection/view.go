package selection

import (
	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/navigation"
	"github.com/agentstation/spotmap/pkg/query"
)

// EmptyMessage is shown when no spot matches the selection.
const EmptyMessage = "条件に合うスポットが見つかりませんでした"

// ListView is everything a spot listing screen renders.
type ListView struct {
	Region     *catalogs.Region  `json:"region,omitempty" yaml:"region,omitempty"` // nil when listing every region
	Filter     query.Filter      `json:"filter" yaml:"filter"`
	Categories []CategoryChip    `json:"categories" yaml:"categories"`
	Spots      []Card            `json:"spots" yaml:"spots"`
	Count      int               `json:"count" yaml:"count"`
	Empty      *EmptyState       `json:"empty,omitempty" yaml:"empty,omitempty"`
	Back       navigation.Target `json:"back" yaml:"back"`
	Warnings   []string          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// CategoryChip is a category selector entry.
type CategoryChip struct {
	CategoryOption `yaml:",inline"`
	Selected       bool `json:"selected" yaml:"selected"`
}

// EmptyState is the placeholder for an empty result, with the filter a reset restores.
type EmptyState struct {
	Message string       `json:"message" yaml:"message"`
	Reset   query.Filter `json:"reset" yaml:"reset"`
}

// Card is the summary of a spot in a listing.
type Card struct {
	ID          catalogs.SpotID   `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	NameEn      string            `json:"nameEn" yaml:"nameEn"`
	Description string            `json:"description" yaml:"description"`
	Category    CategoryOption    `json:"category" yaml:"category"`
	Prefecture  catalogs.RegionID `json:"prefecture" yaml:"prefecture"`
	Rating      float64           `json:"rating" yaml:"rating"`
	Highlights  []string          `json:"highlights,omitempty" yaml:"highlights,omitempty"`
	Station     string            `json:"station,omitempty" yaml:"station,omitempty"`
	VisitTime   string            `json:"visitTime,omitempty" yaml:"visitTime,omitempty"`
	Image       string            `json:"image,omitempty" yaml:"image,omitempty"`
	Target      navigation.Target `json:"target" yaml:"target"`
}

// NewCard summarizes a spot. Highlights are cut to the first three.
func NewCard(s *catalogs.Spot) Card {
	target, err := navigation.ForSpot(s.ID)
	if err != nil {
		// Ids that are not slugs still get a detail view.
		target = navigation.Target{View: navigation.ViewSpotDetail, Params: map[string]string{navigation.ParamID: string(s.ID)}}
	}
	return Card{
		ID:          s.ID,
		Name:        s.Name,
		NameEn:      s.NameEn,
		Description: s.Description,
		Category:    LookupCategory(s.Category),
		Prefecture:  s.Prefecture,
		Rating:      s.Rating,
		Highlights:  s.DisplayHighlights(),
		Station:     s.Location.Station,
		VisitTime:   s.VisitTime,
		Image:       s.Image,
		Target:      target,
	}
}

// Cards summarizes spots in order.
func Cards(spots []*catalogs.Spot) []Card {
	cards := make([]Card, len(spots))
	for i, s := range spots {
		cards[i] = NewCard(s)
	}
	return cards
}
