package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseParser_Parse(t *testing.T) {
	parser := NewResponseParser(NewColorMatcher(samplePalette()))

	t.Run("garment and gender", func(t *testing.T) {
		result := parser.Parse("Shirt: (Scarlet)\ngender: Female")

		require.Len(t, result.Colors, 1)
		assert.Equal(t, "Shirt", result.Colors[0].Clothing)
		assert.Equal(t, "Scarlet", result.Colors[0].Name)
		assert.Equal(t, "#f0341b", result.Colors[0].Hex)
		assert.Equal(t, 3, result.Colors[0].Index)
		assert.Equal(t, "Female", result.Gender)
	})

	t.Run("invalid lines are skipped", func(t *testing.T) {
		result := parser.Parse("not a valid line\n\n   \nPants: Olive Buff\n: Red\nHat:   ")

		require.Len(t, result.Colors, 1)
		assert.Equal(t, "Pants", result.Colors[0].Clothing)
		assert.Empty(t, result.Gender)
	})

	t.Run("split at first colon", func(t *testing.T) {
		result := parser.Parse("Jacket: Red: bright")

		require.Len(t, result.Colors, 1)
		// "Red: bright" contains "red" so the fuzzy pass picks Red
		assert.Equal(t, "Red", result.Colors[0].Name)
	})

	t.Run("gender normalization", func(t *testing.T) {
		assert.Equal(t, "Male", parser.Parse("GENDER: male").Gender)
		assert.Equal(t, "Female", parser.Parse("gender: (female)").Gender)
		assert.Equal(t, "Non-binary", parser.Parse("Gender: Non-binary").Gender)
	})

	t.Run("unmatched colors are dropped", func(t *testing.T) {
		result := parser.Parse("Shirt: Ultramarine\nShoes: Hermosa Pink\r")

		require.Len(t, result.Colors, 1)
		assert.Equal(t, "Hermosa Pink", result.Colors[0].Name)
		assert.Equal(t, []string{"Ultramarine"}, result.Unmatched)
	})

	t.Run("order follows input", func(t *testing.T) {
		result := parser.Parse("Shoes: Red\nShirt: Scarlet\nPants: Olive Buff")

		require.Len(t, result.Colors, 3)
		assert.Equal(t, []string{"Shoes", "Shirt", "Pants"}, []string{
			result.Colors[0].Clothing, result.Colors[1].Clothing, result.Colors[2].Clothing,
		})
	})

	t.Run("empty text", func(t *testing.T) {
		result := parser.Parse("")
		assert.True(t, result.IsEmpty())
		assert.NotNil(t, result.Colors)
	})
}
