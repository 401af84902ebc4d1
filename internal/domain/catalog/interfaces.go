package catalog

// Provider is the read-only query surface of the catalog.
// Catalog implements it; consumers should depend on this interface.
type Provider interface {
	ListByCategory(category Category) []*Entry
	FindByName(name string) (*Entry, error)
	All() []*Entry
}

// Compile-time interface check
var _ Provider = (*Catalog)(nil)
