package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategories_FixedOrder(t *testing.T) {
	require.Equal(t, []Category{Creational, Structural, Behavioral}, Categories())
}

func TestCategory_String(t *testing.T) {
	require.Equal(t, "Creational", Creational.String())
	require.Equal(t, "Structural", Structural.String())
	require.Equal(t, "Behavioral", Behavioral.String())
	require.Equal(t, "Unknown", Category(42).String())
}

func TestCategory_Slug(t *testing.T) {
	require.Equal(t, "structural", Structural.Slug())
}

func TestCategory_IsValid(t *testing.T) {
	for _, c := range Categories() {
		require.True(t, c.IsValid(), c.String())
	}
	require.False(t, Category(-1).IsValid())
	require.False(t, Category(3).IsValid())
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"creational", Creational},
		{"Structural", Structural},
		{"  BEHAVIORAL ", Behavioral},
		{"behavioural", Behavioral},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseCategory_Invalid(t *testing.T) {
	for _, input := range []string{"", "functional", "creation"} {
		_, err := ParseCategory(input)
		require.ErrorIs(t, err, ErrInvalidCategory, input)
	}
}
