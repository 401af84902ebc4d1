package catalog

import (
	"io/fs"
	"os"
	"path/filepath"

	domain "github.com/zjrosen/gofcat/internal/domain/catalog"
	"github.com/zjrosen/gofcat/internal/log"
)

// UserCatalogBaseDir returns the base directory for user catalog entries.
// Returns ~/.gofcat (root for os.DirFS, containing a "catalog" subdirectory).
// Returns empty string if home directory cannot be determined.
func UserCatalogBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gofcat")
}

// LoadUserCatalogFromDir loads YAML entries from a user directory.
// baseDir should contain a "catalog" subdirectory with the built-in layout.
// Returns nil, nil, nil if the directory doesn't exist (graceful fallback).
// Invalid catalog.yaml files are logged and skipped.
func LoadUserCatalogFromDir(baseDir string) ([]*domain.Entry, fs.FS, error) {
	if baseDir == "" {
		return nil, nil, nil
	}

	info, err := os.Stat(filepath.Join(baseDir, CatalogRoot))
	if err != nil || !info.IsDir() {
		// No user catalog - not an error
		return nil, nil, nil
	}

	userFS := os.DirFS(baseDir)

	paths, err := findCatalogFiles(userFS)
	if err != nil {
		log.Warn(log.CatCatalog, "scanning user catalog", "error", err.Error(), "dir", baseDir)
		return nil, userFS, nil
	}

	files := make([]parsedFile, 0, len(paths))
	for _, p := range paths {
		file, err := loadCatalogFile(userFS, p, domain.SourceUser)
		if err != nil {
			// Skip just this file - the rest of the user catalog may be fine
			log.Warn(log.CatCatalog, "skipping user catalog file", "error", err.Error(), "path", p)
			continue
		}
		files = append(files, file)
	}

	entries := flatten(files)
	log.Debug(log.CatCatalog, "loaded user catalog", "dir", baseDir, "entries", len(entries))
	return entries, userFS, nil
}
