// Package embedded carries the bundled spot catalog.
package embedded

import (
	"embed"
)

// FS holds regions.yaml and the per-region spot files under spots/.
//
//go:embed catalog
var FS embed.FS
