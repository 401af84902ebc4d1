package templates

import (
	"embed"
	"io/fs"
)

// catalogContent embeds the built-in pattern catalog.
// The structure is:
//   - catalog/<category>/catalog.yaml (pattern enumeration for one category)
//   - catalog/<category>/*.md (pattern write-ups referenced by the YAML)
//
//go:embed catalog
var catalogContent embed.FS

// CatalogFS returns the embedded filesystem containing the built-in catalog.
// This is used by the catalog service to build the pattern catalog at startup.
func CatalogFS() fs.FS {
	return catalogContent
}
