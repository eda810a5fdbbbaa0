// Package openapi embeds the OpenAPI specification of the spotmap HTTP API.
// The YAML document is the source; JSON is derived from it on first use.
package openapi

import (
	_ "embed"
	"sync"

	"github.com/goccy/go-yaml"
)

// SpecYAML contains the OpenAPI 3.0 specification in YAML format.
// Served at: GET /api/v1/openapi.yaml
//
//go:embed openapi.yaml
var SpecYAML []byte

// JSON returns the specification converted to JSON.
// Served at: GET /api/v1/openapi.json
var JSON = sync.OnceValues(func() ([]byte, error) {
	return yaml.YAMLToJSON(SpecYAML)
})
