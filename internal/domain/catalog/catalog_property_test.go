package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// ============================================================================
// Property-Based Tests for Catalog Invariants
// ============================================================================

// drawEntries generates a set of entries with unique names spread over random categories.
func drawEntries(t *rapid.T) []*Entry {
	n := rapid.IntRange(0, 40).Draw(t, "n")
	entries := make([]*Entry, 0, n)
	for i := 0; i < n; i++ {
		cat := rapid.SampledFrom(Categories()).Draw(t, fmt.Sprintf("category-%d", i))
		entry, err := NewBuilder(fmt.Sprintf("Pattern %d", i)).
			Category(cat).
			Summary("generated").
			Build()
		if err != nil {
			t.Fatalf("build entry: %v", err)
		}
		entries = append(entries, entry)
	}
	return entries
}

// TestProperty_ListByCategoryOnlyReturnsThatCategory verifies category filtering.
func TestProperty_ListByCategoryOnlyReturnsThatCategory(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c, err := New(drawEntries(t)...)
		require.NoError(t, err)

		for _, cat := range Categories() {
			for _, e := range c.ListByCategory(cat) {
				require.Equal(t, cat, e.Category())
			}
		}
	})
}

// TestProperty_AllIsUnionOfCategories verifies that All is exactly the
// concatenation of the three category lists, with no duplicate names.
func TestProperty_AllIsUnionOfCategories(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		entries := drawEntries(t)
		c, err := New(entries...)
		require.NoError(t, err)

		var concatenated []*Entry
		for _, cat := range Categories() {
			concatenated = append(concatenated, c.ListByCategory(cat)...)
		}

		all := c.All()
		require.Len(t, all, len(entries))
		require.Equal(t, len(concatenated), len(all))
		for i := range all {
			require.Same(t, concatenated[i], all[i])
		}

		seen := make(map[string]bool, len(all))
		for _, e := range all {
			require.False(t, seen[e.Name()], "duplicate name %q", e.Name())
			seen[e.Name()] = true
		}
	})
}

// TestProperty_FindByNameRoundTrips verifies every listed entry can be found by its name.
func TestProperty_FindByNameRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c, err := New(drawEntries(t)...)
		require.NoError(t, err)

		for _, e := range c.All() {
			found, err := c.FindByName(e.Name())
			require.NoError(t, err)
			require.Same(t, e, found)
		}
	})
}

// TestProperty_DuplicateNamesRejected verifies that reusing any name fails construction.
func TestProperty_DuplicateNamesRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		entries := drawEntries(t)
		if len(entries) == 0 {
			return
		}

		victim := rapid.SampledFrom(entries).Draw(t, "victim")
		cat := rapid.SampledFrom(Categories()).Draw(t, "dupCategory")
		dup, err := NewBuilder(victim.Name()).Category(cat).Summary("dup").Build()
		require.NoError(t, err)

		_, err = New(append(entries, dup)...)
		require.Error(t, err)
		if cat == victim.Category() {
			require.ErrorIs(t, err, ErrDuplicateName)
		} else {
			require.ErrorIs(t, err, ErrNameInMultipleCategories)
		}
	})
}
