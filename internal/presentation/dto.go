package presentation

import (
	appcatalog "github.com/zjrosen/gofcat/internal/application/catalog"
	"github.com/zjrosen/gofcat/internal/domain/catalog"
)

// EntryDTO represents a pattern entry for presentation
type EntryDTO struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
	Example  string `json:"example,omitempty"`
	HasDoc   bool   `json:"has_doc"`
	Source   string `json:"source"`
}

// CategoryDTO represents one line of the catalog overview
type CategoryDTO struct {
	Category string   `json:"category"`
	Count    int      `json:"count"`
	Patterns []string `json:"patterns"`
}

// FromDomainEntry converts a domain entry to a DTO
func FromDomainEntry(e *catalog.Entry) EntryDTO {
	return EntryDTO{
		Name:     e.Name(),
		Category: e.Category().Slug(),
		Summary:  e.Summary(),
		Example:  e.Example(),
		HasDoc:   e.Doc() != "",
		Source:   e.Source().String(),
	}
}

// FromDomainEntries converts a slice of domain entries to DTOs
func FromDomainEntries(entries []*catalog.Entry) []EntryDTO {
	dtos := make([]EntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = FromDomainEntry(e)
	}
	return dtos
}

// FromCategorySummaries builds the overview DTOs, listing pattern names per category.
func FromCategorySummaries(summaries []appcatalog.CategorySummary, provider catalog.Provider) []CategoryDTO {
	dtos := make([]CategoryDTO, len(summaries))
	for i, s := range summaries {
		entries := provider.ListByCategory(s.Category)
		names := make([]string, len(entries))
		for j, e := range entries {
			names[j] = e.Name()
		}
		dtos[i] = CategoryDTO{
			Category: s.Category.Slug(),
			Count:    s.Count,
			Patterns: names,
		}
	}
	return dtos
}
