package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCategory is returned when a category value or name is not one of
// the three Gang-of-Four groupings.
var ErrInvalidCategory = errors.New("category must be creational, structural, or behavioral")

// Category is one of the fixed Gang-of-Four pattern groupings.
type Category int

const (
	// Creational patterns abstract object instantiation.
	Creational Category = iota
	// Structural patterns compose classes and objects into larger structures.
	Structural
	// Behavioral patterns assign responsibilities between objects.
	Behavioral
)

// Categories returns every category in the fixed catalog order.
func Categories() []Category {
	return []Category{Creational, Structural, Behavioral}
}

// String returns a human-readable representation of the Category.
func (c Category) String() string {
	switch c {
	case Creational:
		return "Creational"
	case Structural:
		return "Structural"
	case Behavioral:
		return "Behavioral"
	default:
		return "Unknown"
	}
}

// Slug returns the lowercase form used in YAML files, flags and JSON output.
func (c Category) Slug() string {
	return strings.ToLower(c.String())
}

// IsValid returns true if the category is one of the known groupings.
func (c Category) IsValid() bool {
	return c >= Creational && c <= Behavioral
}

// ParseCategory converts a textual category (case-insensitive) into a Category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "creational":
		return Creational, nil
	case "structural":
		return Structural, nil
	case "behavioral", "behavioural":
		return Behavioral, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
}
