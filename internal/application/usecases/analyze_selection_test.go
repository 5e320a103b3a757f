package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wada-stylist/internal/domain/repositories"
	"wada-stylist/internal/domain/services"
	"wada-stylist/internal/domain/valueobjects"
	infrarepos "wada-stylist/internal/infrastructure/repositories"
)

const visionAnswer = "Shirt: Scarlet\nPants: Olive Buff\nHat: Mystery Color\ngender: male"

func analyzeFixture(t *testing.T, text string) (*AnalyzeUseCase, *SelectionUseCase, repositories.SessionRepository, *recordingTracker) {
	t.Helper()

	sessions := infrarepos.NewMemorySessionRepository(time.Hour)
	tracker := &recordingTracker{}
	domain := services.NewColorAnalysisDomainService(&mockColorAnalysisService{text: text}, testPalette())

	return NewAnalyzeUseCase(sessions, domain, tracker, "gemini-2.0-flash"), NewSelectionUseCase(sessions), sessions, tracker
}

func TestAnalyzeUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	analyze, _, sessions, tracker := analyzeFixture(t, visionAnswer)

	output, err := analyze.Execute(ctx, AnalyzeInput{SessionID: "s1", Image: newTestImage(t)})
	require.NoError(t, err)

	require.Len(t, output.DetectedColors, 2)
	assert.Equal(t, "Shirt", output.DetectedColors[0].Clothing)
	assert.Equal(t, "Scarlet", output.DetectedColors[0].Name)
	assert.Equal(t, valueobjects.GenderMale, output.Gender)
	assert.Equal(t, []string{"Mystery Color"}, output.Unmatched)
	assert.Equal(t, []int{3, 5, 1, 4}, combinationIndices(output.Recommendations))
	assert.Equal(t, 4, output.View.Count)
	assert.False(t, output.View.CanGenerate)
	assert.Empty(t, output.Message)

	assert.Equal(t, []string{valueobjects.GenderMale}, tracker.genders)

	stored, err := sessions.FindByID(ctx, "s1")
	require.NoError(t, err)
	img, err := stored.Image()
	require.NoError(t, err)
	assert.NotNil(t, img)
}

func TestAnalyzeUseCase_NoColors(t *testing.T) {
	analyze, _, _, tracker := analyzeFixture(t, "I see a landscape.")

	output, err := analyze.Execute(context.Background(), AnalyzeInput{SessionID: "s1", Image: newTestImage(t)})
	require.NoError(t, err)
	assert.Empty(t, output.DetectedColors)
	assert.Empty(t, output.Recommendations)
	assert.NotEmpty(t, output.Message)
	assert.Empty(t, tracker.genders)
}

func TestAnalyzeUseCase_RequiresImage(t *testing.T) {
	analyze, _, _, _ := analyzeFixture(t, visionAnswer)

	_, err := analyze.Execute(context.Background(), AnalyzeInput{SessionID: "s1"})
	assert.Equal(t, valueobjects.FailureValidation, valueobjects.CategoryOf(err))
}

func TestSelectionUseCase(t *testing.T) {
	ctx := context.Background()
	analyze, selection, _, _ := analyzeFixture(t, visionAnswer)

	_, err := analyze.Execute(ctx, AnalyzeInput{SessionID: "s1", Image: newTestImage(t)})
	require.NoError(t, err)

	out, err := selection.ToggleGarment(ctx, "s1", "Shirt")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5}, combinationIndices(out.View.Combinations))

	t.Run("unknown garment", func(t *testing.T) {
		_, err := selection.ToggleGarment(ctx, "s1", "Scarf")
		assert.Equal(t, valueobjects.FailureValidation, valueobjects.CategoryOf(err))
	})

	t.Run("combination outside the filtered list", func(t *testing.T) {
		_, err := selection.SelectCombination(ctx, "s1", intPtr(1))
		assert.Equal(t, valueobjects.FailureValidation, valueobjects.CategoryOf(err))
	})

	out, err = selection.SelectCombination(ctx, "s1", intPtr(5))
	require.NoError(t, err)
	require.NotNil(t, out.View.SelectedCombination)
	assert.Equal(t, 5, out.View.SelectedCombination.Index)
	assert.True(t, out.View.CanGenerate)

	// Pants だけにすると 5 は候補から外れ、選択も解除される
	_, err = selection.ToggleGarment(ctx, "s1", "Pants")
	require.NoError(t, err)
	out, err = selection.ToggleGarment(ctx, "s1", "Shirt")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 4}, combinationIndices(out.View.Combinations))
	assert.Nil(t, out.Selection.SelectedCombination)
	assert.False(t, out.View.CanGenerate)

	out, err = selection.SetStyle(ctx, "s1", "vintage")
	require.NoError(t, err)
	assert.Equal(t, valueobjects.StyleVintage, out.Selection.Style)

	out, err = selection.SetStyle(ctx, "s1", "gothic")
	require.NoError(t, err)
	assert.Equal(t, valueobjects.StyleCasual, out.Selection.Style)

	out, err = selection.ClearSelection(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, out.Selection.SelectedClothes)
	assert.Equal(t, 4, out.View.Count)

	out, err = selection.SetColorFilter(ctx, "s1", "Hermosa Pink")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4}, combinationIndices(out.View.Combinations))

	view, err := selection.View(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Hermosa Pink", view.Selection.ActiveColorFilter)
}
