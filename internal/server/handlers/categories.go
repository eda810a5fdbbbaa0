package handlers

import (
	"net/http"

	"github.com/agentstation/spotmap/internal/server/filter"
	"github.com/agentstation/spotmap/internal/server/response"
	"github.com/agentstation/spotmap/pkg/navigation"
	"github.com/agentstation/spotmap/pkg/selection"
)

// HandleListCategories handles GET /api/v1/categories.
// @Summary List categories
// @Description The category selector options, starting with all
// @Tags categories
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Router /api/v1/categories [get].
func (h *Handlers) HandleListCategories(w http.ResponseWriter, _ *http.Request) {
	categories := selection.Categories()
	response.OK(w, map[string]any{
		"categories": categories,
		"count":      len(categories),
	})
}

// HandleNavigate handles GET /api/v1/navigate?action=&id=.
// @Summary Resolve a navigation target
// @Description Builds the target of a selection and reports whether its id exists in the catalog
// @Tags navigation
// @Produce json
// @Param action query string true "region, all, category, spot or home"
// @Param id query string false "Region, category or spot ID"
// @Success 200 {object} response.Response{data=object}
// @Failure 400 {object} response.Response{error=response.Error}
// @Router /api/v1/navigate [get].
func (h *Handlers) HandleNavigate(w http.ResponseWriter, r *http.Request) {
	target, err := filter.ParseNavigate(r)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

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

	response.OK(w, map[string]any{
		"target": target,
		"path":   target.Path(),
		"exists": navigation.Resolves(cat, target),
	})
}
