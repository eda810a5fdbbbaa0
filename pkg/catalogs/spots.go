package catalogs

import (
	"slices"

	"github.com/agentstation/spotmap/pkg/errors"
)

// Spots is an ordered collection of spots indexed by id.
// It is never modified after the catalog is built.
type Spots struct {
	order []*Spot
	index map[SpotID]*Spot
}

func newSpots(capacity int) *Spots {
	return &Spots{
		order: make([]*Spot, 0, capacity),
		index: make(map[SpotID]*Spot, capacity),
	}
}

// add appends a spot, rejecting duplicate ids. source names where the spot came from.
func (s *Spots) add(spot *Spot, source string) error {
	if _, exists := s.index[spot.ID]; exists {
		return &errors.DuplicateError{Resource: "spot", ID: string(spot.ID), Source: source}
	}
	s.order = append(s.order, spot)
	s.index[spot.ID] = spot
	return nil
}

// Get returns a spot by id and whether it exists.
func (s *Spots) Get(id SpotID) (*Spot, bool) {
	spot, ok := s.index[id]
	return spot, ok
}

// Has reports whether a spot with id exists.
func (s *Spots) Has(id SpotID) bool {
	_, ok := s.index[id]
	return ok
}

// Len returns the number of spots.
func (s *Spots) Len() int {
	return len(s.order)
}

// List returns the spots in definition order. The slice is a copy.
func (s *Spots) List() []*Spot {
	return slices.Clone(s.order)
}

// IDs returns the spot ids in definition order.
func (s *Spots) IDs() []SpotID {
	ids := make([]SpotID, len(s.order))
	for i, spot := range s.order {
		ids[i] = spot.ID
	}
	return ids
}

// ForEach calls fn for each spot in order until fn returns false.
func (s *Spots) ForEach(fn func(spot *Spot) bool) {
	for _, spot := range s.order {
		if !fn(spot) {
			return
		}
	}
}
