// Package catalog implements the application layer of the pattern catalog.
//
// It turns catalog content (embedded YAML and Markdown write-ups, plus an
// optional user directory with the same layout) into the immutable domain
// catalog, and exposes it to the CLI through CatalogService.
//
// Content layout, relative to the filesystem root:
//
//	catalog/<category>/catalog.yaml
//	catalog/<category>/<pattern>.md
//
// Import the domain package with an alias when both are needed:
//
//	import (
//	    appcatalog "github.com/zjrosen/gofcat/internal/application/catalog"
//	    "github.com/zjrosen/gofcat/internal/domain/catalog"
//	)
package catalog
