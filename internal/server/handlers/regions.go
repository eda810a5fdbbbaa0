package handlers

import (
	"net/http"

	"github.com/agentstation/spotmap/internal/server/response"
	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/selection"
)

// RegionDetail is a region with its featured spots and geographic extent.
type RegionDetail struct {
	selection.RegionCard
	SpotCount int            `json:"spotCount"`
	Area      *catalogs.Area `json:"area"` // nil for a region without spots
}

// HandleListRegions handles GET /api/v1/regions.
// @Summary List regions
// @Description The region selection screen: regions in catalog order with their top spots, the view-all target and category shortcuts
// @Tags regions
// @Produce json
// @Success 200 {object} response.Response{data=selection.HomeView}
// @Security ApiKeyAuth
// @Router /api/v1/regions [get].
func (h *Handlers) HandleListRegions(w http.ResponseWriter, _ *http.Request) {
	data, err := h.cache.Remember("regions", func() (any, error) {
		sm, err := h.client()
		if err != nil {
			return nil, err
		}
		return sm.Home(), nil
	})
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, data)
}

// HandleGetRegion handles GET /api/v1/regions/{id}.
// @Summary Get region by ID
// @Description A region with resolved top spots, spot count and bounding area
// @Tags regions
// @Produce json
// @Param id path string true "Region ID"
// @Success 200 {object} response.Response{data=RegionDetail}
// @Failure 404 {object} response.Response{error=response.Error}
// @Security ApiKeyAuth
// @Router /api/v1/regions/{id} [get].
func (h *Handlers) HandleGetRegion(w http.ResponseWriter, r *http.Request) {
	id := catalogs.RegionID(r.PathValue("id"))

	data, err := h.cache.Remember("region:"+string(id), func() (any, error) {
		sm, err := h.client()
		if err != nil {
			return nil, err
		}
		cat, err := sm.Catalog()
		if err != nil {
			return nil, err
		}
		region, err := cat.Region(id)
		if err != nil {
			return nil, err
		}
		spots, err := cat.SpotsInRegion(id)
		if err != nil {
			return nil, err
		}
		return RegionDetail{
			RegionCard: selection.NewRegionCard(cat, region),
			SpotCount:  len(spots),
			Area:       catalogs.AreaOf(catalogs.BoundOf(spots)),
		}, nil
	})
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, data)
}

// HandleGetRegionSpots handles GET /api/v1/regions/{id}/spots.
// @Summary Region spot listing
// @Description The spot listing of one region; category and sort come from the query string
// @Tags regions
// @Produce json
// @Param id path string true "Region ID"
// @Param category query string false "Category or all"
// @Param sort query string false "rating or name"
// @Success 200 {object} response.Response{data=selection.ListView}
// @Failure 404 {object} response.Response{error=response.Error}
// @Security ApiKeyAuth
// @Router /api/v1/regions/{id}/spots [get].
func (h *Handlers) HandleGetRegionSpots(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	sm, err := h.client()
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	cat, err := sm.Catalog()
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	if _, err := cat.Region(catalogs.RegionID(id)); err != nil {
		response.ErrorFromType(w, err)
		return
	}

	q := r.URL.Query()
	h.serveListing(w, r, sm, id, q.Get("category"), q.Get("sort"))
}
