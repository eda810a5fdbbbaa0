package handlers

import (
	"net/http"

	"github.com/agentstation/spotmap/internal/embedded/openapi"
	"github.com/agentstation/spotmap/internal/server/response"
)

// HandleOpenAPIJSON serves the embedded OpenAPI specification in JSON format.
// @Summary Get OpenAPI specification (JSON)
// @Tags meta
// @Produce json
// @Router /api/v1/openapi.json [get].
func (h *Handlers) HandleOpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	spec, err := openapi.JSON()
	if err != nil {
		h.log(r).Error().Err(err).Msg("Failed to convert OpenAPI specification")
		response.InternalError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(spec)
}

// HandleOpenAPIYAML serves the embedded OpenAPI specification in YAML format.
// @Summary Get OpenAPI specification (YAML)
// @Tags meta
// @Produce application/x-yaml
// @Router /api/v1/openapi.yaml [get].
func (h *Handlers) HandleOpenAPIYAML(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/x-yaml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(openapi.SpecYAML)
}
