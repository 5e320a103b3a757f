package usecases

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"sync"
	"testing"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/repositories"
	"wada-stylist/internal/domain/valueobjects"
)

func testPalette() *entities.Palette {
	colors := []entities.PaletteColor{
		{Index: 1, Name: "Red", Hex: "#d2252e", RGB: "210, 37, 46", Combinations: []int{1, 2}},
		{Index: 2, Name: "Red Orange", Hex: "#e8452b", RGB: "232, 69, 43", Combinations: []int{2}},
		{Index: 3, Name: "Scarlet", Hex: "#f0341b", RGB: "240, 52, 27", Combinations: []int{3, 5}},
		{Index: 4, Name: "Olive Buff", Hex: "#bcb875", RGB: "188, 184, 117", Combinations: []int{1, 4}},
		{Index: 5, Name: "Hermosa Pink", Hex: "#f9b0c6", RGB: "249, 176, 198", Combinations: []int{4, 5}},
	}
	combinations := []entities.Combination{
		{Index: 1, Names: []string{"Red", "Olive Buff"}, Codes: []string{"R:210 / G:37 / B:46", "R:188 / G:184 / B:117"}},
		{Index: 2, Names: []string{"Red", "Red Orange"}, Codes: []string{"R:210 / G:37 / B:46", "R:232 / G:69 / B:43"}},
		{Index: 3, Names: []string{"Scarlet", "Olive Buff"}, Codes: []string{"R:240 / G:52 / B:27", "R:188 / G:184 / B:117"}},
		{Index: 4, Names: []string{"Olive Buff", "Hermosa Pink"}, Codes: []string{"R:188 / G:184 / B:117", "R:249 / G:176 / B:198"}},
		{Index: 5, Names: []string{"Scarlet", "Hermosa Pink"}, Codes: []string{"R:240 / G:52 / B:27", "R:249 / G:176 / B:198"}},
	}
	return entities.NewPalette(colors, combinations)
}

func newTestImage(t *testing.T) *valueobjects.ImageData {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	data, err := valueobjects.NewImageData(buf.Bytes(), "image/png")
	if err != nil {
		t.Fatalf("Failed to create ImageData: %v", err)
	}
	return data
}

type mockColorAnalysisService struct {
	text string
	err  error
}

func (m *mockColorAnalysisService) AnalyzeColors(ctx context.Context, request *entities.AnalysisRequest, prompt string) (string, error) {
	return m.text, m.err
}

func (m *mockColorAnalysisService) Close() error {
	return nil
}

type mockOutfitImageService struct {
	image    *valueobjects.ImageData
	err      error
	requests []*entities.OutfitRequest
}

func (m *mockOutfitImageService) GenerateOutfit(ctx context.Context, request *entities.OutfitRequest) (*entities.OutfitResult, error) {
	m.requests = append(m.requests, request)
	if m.err != nil {
		return nil, m.err
	}
	return entities.NewOutfitResult("done", m.image), nil
}

type mockDescriptionService struct {
	text string
	err  error
}

func (m *mockDescriptionService) DescribeOutfit(ctx context.Context, request *entities.AnalysisRequest, prompt string) (string, error) {
	return m.text, m.err
}

// recordingTracker keeps every event it receives.
type recordingTracker struct {
	mu           sync.Mutex
	visits       []entities.Visit
	colors       []entities.ColorSelection
	combinations []entities.CombinationSelection
	genders      []string
	contexts     []context.Context
}

var _ repositories.AnalyticsTracker = (*recordingTracker)(nil)

func (r *recordingTracker) TrackVisit(ctx context.Context, visit entities.Visit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visits = append(r.visits, visit)
}

func (r *recordingTracker) TrackColor(ctx context.Context, color entities.ColorSelection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.colors = append(r.colors, color)
	r.contexts = append(r.contexts, ctx)
}

func (r *recordingTracker) TrackCombination(ctx context.Context, selection entities.CombinationSelection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.combinations = append(r.combinations, selection)
	r.contexts = append(r.contexts, ctx)
}

func (r *recordingTracker) TrackGender(ctx context.Context, gender string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.genders = append(r.genders, gender)
	r.contexts = append(r.contexts, ctx)
}

func combinationIndices(combs []entities.Combination) []int {
	out := make([]int, len(combs))
	for i, c := range combs {
		out[i] = c.Index
	}
	return out
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}
