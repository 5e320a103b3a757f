package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONPaletteRepository_Load(t *testing.T) {
	repo := NewJSONPaletteRepository("testdata/colors.json", "testdata/combinations.json")

	palette, err := repo.Load()
	require.NoError(t, err)

	assert.Equal(t, 3, palette.Len())
	assert.Equal(t, 3, palette.CombinationCount())

	// index の無いレコードは位置で採番される
	second, ok := palette.Combination(2)
	require.True(t, ok)
	assert.Equal(t, []string{"Hermosa Pink", "Scarlet"}, second.Names)

	red, ok := palette.ExactColor("red")
	require.True(t, ok)
	assert.Equal(t, "#d2252e", red.Hex)

	// 存在しない組み合わせ 9 は検証で報告されるが読み込みは成功する
	assert.NotEmpty(t, palette.Validate())
}

func TestJSONPaletteRepository_LoadErrors(t *testing.T) {
	tests := []struct {
		name         string
		colors       string
		combinations string
	}{
		{name: "missing colors file", colors: "testdata/nope.json", combinations: "testdata/combinations.json"},
		{name: "missing combinations file", colors: "testdata/colors.json", combinations: "testdata/nope.json"},
		{name: "empty palette", colors: "testdata/empty_colors.json", combinations: "testdata/combinations.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewJSONPaletteRepository(tt.colors, tt.combinations).Load()
			assert.Error(t, err)
		})
	}
}
