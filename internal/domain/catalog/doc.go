// Package catalog implements the domain layer for the design-pattern catalog.
//
// This package follows the same layering as the rest of gofcat:
//   - Contains only pure Go code with standard library imports (no external dependencies)
//   - Defines the Category enumeration and the immutable Entry value
//   - Implements the catalog invariants (unique names, one category per entry)
//   - Has no knowledge of infrastructure concerns (file I/O, YAML parsing, rendering)
//
// # Core Types
//
// Category is the closed set of Gang-of-Four groupings: Creational, Structural
// and Behavioral. Categories returns them in the fixed catalog order.
//
// Entry is a single named pattern with its category, summary and optional
// metadata. Use Builder for construction; entries cannot be modified once built.
//
// # Catalog
//
// Catalog is the read-only collection of entries. New is the only way to
// create one and it validates every invariant up front. After that:
//   - ListByCategory returns the entries of one category in catalog order
//   - FindByName performs a case-sensitive exact lookup across all categories
//   - All returns every entry, grouped in the fixed category order
//
// Catalog holds no locks; it is safe for concurrent readers because nothing
// mutates it after New returns. Every returned slice is a fresh copy.
//
// Provider is the interface Catalog implements, enabling dependency injection
// and mock substitution in tests.
package catalog
