package catalog

import (
	"fmt"
	"io/fs"
	"strings"

	domain "github.com/zjrosen/gofcat/internal/domain/catalog"
	"github.com/zjrosen/gofcat/internal/log"
)

// CategorySummary is one line of the catalog overview.
type CategorySummary struct {
	Category domain.Category
	Count    int
}

// CatalogService is the read-only handle to the pattern catalog.
// It is built once at startup and shared by every consumer.
type CatalogService struct {
	catalog   *domain.Catalog
	builtinFS fs.FS // Built-in content (from internal/templates)
	userFS    fs.FS // User content rooted at the user base dir, nil if absent
}

// Compile-time interface check
var _ domain.Provider = (*CatalogService)(nil)

// NewCatalogService builds the catalog from built-in content and, if
// userBaseDir is non-empty, the user's catalog directory.
// User entries never replace built-in ones; clashing user entries are skipped.
func NewCatalogService(builtinFS fs.FS, userBaseDir string) (*CatalogService, error) {
	builtin, err := LoadCatalogFromYAML(builtinFS)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	userEntries, userFS, err := LoadUserCatalogFromDir(userBaseDir)
	if err != nil {
		return nil, fmt.Errorf("load user catalog: %w", err)
	}

	entries := append(builtin, acceptUserEntries(builtin, userEntries)...)

	cat, err := domain.New(entries...)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	log.Info(log.CatCatalog, "catalog built",
		"entries", cat.Len(),
		"creational", cat.Count(domain.Creational),
		"structural", cat.Count(domain.Structural),
		"behavioral", cat.Count(domain.Behavioral),
		"user", len(entries)-len(builtin))

	return &CatalogService{
		catalog:   cat,
		builtinFS: builtinFS,
		userFS:    userFS,
	}, nil
}

// acceptUserEntries drops user entries whose name is already taken, either by a
// built-in entry or by an earlier user entry.
func acceptUserEntries(builtin, user []*domain.Entry) []*domain.Entry {
	taken := make(map[string]bool, len(builtin)+len(user))
	for _, e := range builtin {
		taken[e.Name()] = true
	}

	accepted := make([]*domain.Entry, 0, len(user))
	for _, e := range user {
		if taken[e.Name()] {
			log.Warn(log.CatCatalog, "skipping user pattern with a name already in the catalog",
				"name", e.Name(), "category", e.Category())
			continue
		}
		taken[e.Name()] = true
		accepted = append(accepted, e)
	}
	return accepted
}

// ListByCategory returns the entries of one category in catalog order
func (s *CatalogService) ListByCategory(category domain.Category) []*domain.Entry {
	return s.catalog.ListByCategory(category)
}

// FindByName returns the entry with exactly this name
func (s *CatalogService) FindByName(name string) (*domain.Entry, error) {
	entry, err := s.catalog.FindByName(name)
	if err != nil {
		log.Debug(log.CatCatalog, "pattern lookup missed", "name", name)
		return nil, err
	}
	return entry, nil
}

// All returns every entry in catalog order
func (s *CatalogService) All() []*domain.Entry {
	return s.catalog.All()
}

// Summaries returns one summary per category, in the fixed category order.
func (s *CatalogService) Summaries() []CategorySummary {
	cats := domain.Categories()
	result := make([]CategorySummary, len(cats))
	for i, c := range cats {
		result[i] = CategorySummary{Category: c, Count: s.catalog.Count(c)}
	}
	return result
}

// Document returns the Markdown write-up for the named pattern.
// Entries without a write-up get a document generated from their metadata.
func (s *CatalogService) Document(name string) (string, error) {
	entry, err := s.FindByName(name)
	if err != nil {
		return "", err
	}

	if entry.Doc() == "" {
		return fallbackDocument(entry), nil
	}

	fsys := s.builtinFS
	if entry.Source() == domain.SourceUser {
		fsys = s.userFS
	}
	if fsys == nil {
		return "", fmt.Errorf("read write-up %s: no content filesystem for %s entries", entry.Doc(), entry.Source())
	}

	content, err := fs.ReadFile(fsys, entry.Doc())
	if err != nil {
		return "", fmt.Errorf("read write-up %s: %w", entry.Doc(), err)
	}
	return string(content), nil
}

// fallbackDocument renders a minimal write-up from the entry's metadata.
func fallbackDocument(entry *domain.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", entry.Name())
	fmt.Fprintf(&b, "**Category:** %s\n\n", entry.Category())
	fmt.Fprintf(&b, "%s\n", entry.Summary())
	if entry.Example() != "" {
		fmt.Fprintf(&b, "\n## Worked example\n\n%s\n", entry.Example())
	}
	return b.String()
}
