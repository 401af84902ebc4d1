package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	stdpath "path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	domain "github.com/zjrosen/gofcat/internal/domain/catalog"
)

// CatalogRoot is the directory walked for catalog.yaml files.
const CatalogRoot = "catalog"

// catalogFileName is the name of a per-category registry file.
const catalogFileName = "catalog.yaml"

// ErrNoEntries is returned when built-in content declares no patterns.
var ErrNoEntries = errors.New("no catalog entries found in catalog/*/catalog.yaml")

// CatalogFile is the root structure for catalog.yaml
type CatalogFile struct {
	Category string       `yaml:"category"` // creational, structural or behavioral
	Patterns []PatternDef `yaml:"patterns"`
}

// PatternDef defines a single pattern entry in YAML
type PatternDef struct {
	Name    string `yaml:"name"`    // e.g., "Factory Method"
	Summary string `yaml:"summary"` // Short description of the intent
	Example string `yaml:"example"` // Worked example, e.g., "Pizza store"
	Doc     string `yaml:"doc"`     // Markdown write-up filename, relative to the YAML file
}

// parsedFile is one loaded catalog.yaml with its resolved entries.
type parsedFile struct {
	path     string
	category domain.Category
	entries  []*domain.Entry
}

// LoadCatalogFromYAML loads built-in entries from every catalog/*/catalog.yaml in fsys.
// Any malformed file or missing write-up fails the whole load.
func LoadCatalogFromYAML(fsys fs.FS) ([]*domain.Entry, error) {
	entries, err := LoadCatalogFromYAMLWithSource(fsys, domain.SourceBuiltIn)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	return entries, nil
}

// LoadCatalogFromYAMLWithSource loads entries from fsys, tagging them with source.
// Entries are returned grouped in the fixed category order; files of the same
// category keep their path order.
func LoadCatalogFromYAMLWithSource(fsys fs.FS, source domain.Source) ([]*domain.Entry, error) {
	paths, err := findCatalogFiles(fsys)
	if err != nil {
		return nil, err
	}

	files := make([]parsedFile, 0, len(paths))
	for _, p := range paths {
		file, err := loadCatalogFile(fsys, p, source)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return flatten(files), nil
}

// findCatalogFiles returns the paths of all catalog.yaml files under CatalogRoot, sorted.
func findCatalogFiles(fsys fs.FS) ([]string, error) {
	var paths []string
	err := fs.WalkDir(fsys, CatalogRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != catalogFileName {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan catalog files: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

// loadCatalogFile parses one catalog.yaml and builds its entries.
func loadCatalogFile(fsys fs.FS, path string, source domain.Source) (parsedFile, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return parsedFile{}, fmt.Errorf("read %s: %w", path, err)
	}

	var file CatalogFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return parsedFile{}, fmt.Errorf("parse %s: %w", path, err)
	}

	category, err := domain.ParseCategory(file.Category)
	if err != nil {
		return parsedFile{}, fmt.Errorf("%s: %w", path, err)
	}

	// fs.FS always uses forward slashes
	dir := stdpath.Dir(path)

	entries := make([]*domain.Entry, 0, len(file.Patterns))
	for i, def := range file.Patterns {
		doc, err := resolveDocPath(fsys, dir, def.Doc)
		if err != nil {
			return parsedFile{}, fmt.Errorf("pattern %q in %s: %w", def.Name, path, err)
		}

		entry, err := domain.NewBuilder(def.Name).
			Category(category).
			Summary(def.Summary).
			Example(def.Example).
			Doc(doc).
			Source(source).
			Build()
		if err != nil {
			return parsedFile{}, fmt.Errorf("pattern %d in %s: %w", i, path, err)
		}
		entries = append(entries, entry)
	}

	return parsedFile{path: path, category: category, entries: entries}, nil
}

// resolveDocPath resolves a write-up filename relative to the YAML's directory
// and checks that it exists. An empty doc stays empty.
func resolveDocPath(fsys fs.FS, dir, doc string) (string, error) {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return "", nil
	}

	resolved := doc
	if !strings.Contains(doc, "/") {
		resolved = stdpath.Join(dir, doc)
	}

	if _, err := fs.Stat(fsys, resolved); err != nil {
		return "", fmt.Errorf("doc %s: %w", resolved, err)
	}
	return resolved, nil
}

// flatten concatenates file entries in category order, keeping path order within a category.
func flatten(files []parsedFile) []*domain.Entry {
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].category < files[j].category
	})

	var entries []*domain.Entry
	for _, f := range files {
		entries = append(entries, f.entries...)
	}
	return entries
}
