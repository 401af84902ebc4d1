package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Catalog errors
var (
	ErrNotFound                 = errors.New("pattern not found")
	ErrNilEntry                 = errors.New("entry cannot be nil")
	ErrDuplicateName            = errors.New("duplicate pattern name in category")
	ErrNameInMultipleCategories = errors.New("pattern name appears in more than one category")
)

// Catalog holds every pattern entry, grouped by category.
// It is immutable once New returns.
type Catalog struct {
	byCategory [3][]*Entry
	byName     map[string]*Entry
}

// New builds a catalog from entries, validating the catalog invariants.
// Entries keep their relative order within a category; categories are
// ordered Creational, Structural, Behavioral.
func New(entries ...*Entry) (*Catalog, error) {
	c := &Catalog{
		byName: make(map[string]*Entry, len(entries)),
	}
	for i := range c.byCategory {
		c.byCategory[i] = make([]*Entry, 0)
	}

	for _, e := range entries {
		if e == nil {
			return nil, ErrNilEntry
		}
		if strings.TrimSpace(e.Name()) == "" {
			return nil, ErrEmptyName
		}
		if strings.TrimSpace(e.Summary()) == "" {
			return nil, fmt.Errorf("pattern %q: %w", e.Name(), ErrEmptySummary)
		}
		if !e.Category().IsValid() {
			return nil, fmt.Errorf("pattern %q: %w", e.Name(), ErrInvalidCategory)
		}
		if existing, ok := c.byName[e.Name()]; ok {
			if existing.Category() == e.Category() {
				return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateName, e.Name(), e.Category())
			}
			return nil, fmt.Errorf("%w: %q in %s and %s", ErrNameInMultipleCategories, e.Name(), existing.Category(), e.Category())
		}

		c.byName[e.Name()] = e
		c.byCategory[e.Category()] = append(c.byCategory[e.Category()], e)
	}

	return c, nil
}

// ListByCategory returns the entries of one category in catalog order.
// An unknown category value yields an empty slice.
func (c *Catalog) ListByCategory(category Category) []*Entry {
	if !category.IsValid() {
		return make([]*Entry, 0)
	}
	return append(make([]*Entry, 0, len(c.byCategory[category])), c.byCategory[category]...)
}

// FindByName returns the entry with exactly this name (case-sensitive).
func (c *Catalog) FindByName(name string) (*Entry, error) {
	if e, ok := c.byName[name]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// All returns every entry, Creational first, then Structural, then Behavioral.
func (c *Catalog) All() []*Entry {
	result := make([]*Entry, 0, len(c.byName))
	for _, cat := range Categories() {
		result = append(result, c.byCategory[cat]...)
	}
	return result
}

// Len returns the total number of entries.
func (c *Catalog) Len() int {
	return len(c.byName)
}

// Count returns the number of entries in a category.
func (c *Catalog) Count(category Category) int {
	if !category.IsValid() {
		return 0
	}
	return len(c.byCategory[category])
}
