package handlers

import (
	"net/http"

	"github.com/agentstation/spotmap"
	"github.com/agentstation/spotmap/internal/server/filter"
	"github.com/agentstation/spotmap/internal/server/response"
	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/errors"
	"github.com/agentstation/spotmap/pkg/logging"
	"github.com/agentstation/spotmap/pkg/selection"
)

// HandleListSpots handles GET /api/v1/spots.
// @Summary List spots
// @Description Filter and order spots. Invalid values fall back to all / rating and are reported in warnings.
// @Tags spots
// @Produce json
// @Param region query string false "Region ID or all"
// @Param category query string false "Category or all"
// @Param sort query string false "rating or name"
// @Success 200 {object} response.Response{data=selection.ListView}
// @Security ApiKeyAuth
// @Router /api/v1/spots [get].
func (h *Handlers) HandleListSpots(w http.ResponseWriter, r *http.Request) {
	sm, err := h.client()
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	p := filter.ParseListing(r)
	h.serveListing(w, r, sm, p.Region, p.Category, p.Sort)
}

// serveListing parses the filter, reports fallbacks as warnings, and
// serves the listing view of the resulting filter from cache.
func (h *Handlers) serveListing(w http.ResponseWriter, r *http.Request, sm spotmap.Client, region, category, sort string) {
	f, parseErr := sm.Parse(region, category, sort)
	r = h.tagged(r, logging.WithRegion, string(f.Region))
	warnings := h.fallbacks(r, parseErr)

	data, err := h.cache.Remember("spots:"+f.String(), func() (any, error) {
		ctrl := sm.Selection(string(f.Region),
			selection.WithInitialCategory(string(f.Category)),
			selection.WithInitialSort(string(f.Sort)),
			selection.WithLogger(*h.log(r)),
		)
		return ctrl.View(), nil
	})
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	response.OKWithWarnings(w, data, warnings)
}

// fallbacks turns parse errors into warnings and counts them per field.
func (h *Handlers) fallbacks(r *http.Request, err error) []string {
	if err == nil {
		return nil
	}
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}

	warnings := make([]string, 0, len(errs))
	for _, e := range errs {
		warnings = append(warnings, e.Error())
		var v *errors.ValidationError
		if h.metrics != nil && errors.As(e, &v) {
			h.metrics.FilterFallbacks.WithLabelValues(v.Field).Inc()
		}
	}
	h.log(r).Debug().Strs("warnings", warnings).Msg("Listing filter fell back to defaults")
	return warnings
}

// HandleGetSpot handles GET /api/v1/spots/{id}.
// @Summary Get spot by ID
// @Description Full spot record with category display metadata and the back target
// @Tags spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} response.Response{data=selection.DetailView}
// @Failure 404 {object} response.Response{error=response.Error}
// @Security ApiKeyAuth
// @Router /api/v1/spots/{id} [get].
func (h *Handlers) HandleGetSpot(w http.ResponseWriter, r *http.Request) {
	id := catalogs.SpotID(r.PathValue("id"))
	r = h.tagged(r, logging.WithSpot, string(id))

	data, err := h.cache.Remember("spot:"+string(id), func() (any, error) {
		sm, err := h.client()
		if err != nil {
			return nil, err
		}
		cat, err := sm.Catalog()
		if err != nil {
			return nil, err
		}
		return selection.Detail(cat, id)
	})
	if err != nil {
		h.log(r).Debug().Err(err).Msg("Spot lookup failed")
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, data)
}
