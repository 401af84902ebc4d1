package catalog

import (
	"errors"
	"strings"
)

// Builder errors
var (
	ErrEmptyName    = errors.New("pattern name cannot be empty")
	ErrEmptySummary = errors.New("pattern summary cannot be empty")
)

// Builder provides a fluent API for creating entries
type Builder struct {
	name     string
	category Category
	summary  string
	example  string
	doc      string
	source   Source
}

// NewBuilder creates a new entry builder for the named pattern
func NewBuilder(name string) *Builder {
	return &Builder{
		name:     name,
		category: -1,
	}
}

// Category sets the pattern category
func (b *Builder) Category(c Category) *Builder {
	b.category = c
	return b
}

// Summary sets the short description
func (b *Builder) Summary(s string) *Builder {
	b.summary = s
	return b
}

// Example sets the worked example name
func (b *Builder) Example(e string) *Builder {
	b.example = e
	return b
}

// Doc sets the Markdown write-up path
func (b *Builder) Doc(d string) *Builder {
	b.doc = d
	return b
}

// Source sets where the entry came from
func (b *Builder) Source(s Source) *Builder {
	b.source = s
	return b
}

// Build creates the entry, validating required fields.
// Names are kept verbatim (lookups are case-sensitive) but surrounding
// whitespace is not allowed to make a name look unique.
func (b *Builder) Build() (*Entry, error) {
	name := strings.TrimSpace(b.name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !b.category.IsValid() {
		return nil, ErrInvalidCategory
	}
	summary := strings.TrimSpace(b.summary)
	if summary == "" {
		return nil, ErrEmptySummary
	}

	return newEntry(name, b.category, summary, strings.TrimSpace(b.example), b.doc, b.source), nil
}
