package handlers

import (
	"net/http"

	"github.com/agentstation/spotmap/internal/server/response"
)

// HandleHealth handles GET /health and GET /api/v1/health.
// @Summary Health check
// @Description Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Router /api/v1/health [get].
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]any{
		"status":  "healthy",
		"service": "spotmap-api",
		"version": h.app.Version(),
	})
}

// HandleReady handles GET /api/v1/ready.
// @Summary Readiness check
// @Description Readiness check including catalog and cache status
// @Tags health
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Failure 503 {object} response.Response{error=response.Error}
// @Router /api/v1/ready [get].
func (h *Handlers) HandleReady(w http.ResponseWriter, r *http.Request) {
	sm, err := h.client()
	if err != nil {
		h.log(r).Error().Err(err).Msg("Catalog not available")
		response.ServiceUnavailable(w, "Catalog not available")
		return
	}
	cat, err := sm.Catalog()
	if err != nil {
		response.ServiceUnavailable(w, "Catalog not available")
		return
	}

	response.OK(w, map[string]any{
		"status": "ready",
		"catalog": map[string]any{
			"regions": cat.Regions().Len(),
			"spots":   cat.Spots().Len(),
		},
		"cache":          h.cache.GetStats(),
		"uptime_seconds": int64(h.uptime().Seconds()),
	})
}
