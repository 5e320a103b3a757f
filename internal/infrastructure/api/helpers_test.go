package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"wada-stylist/internal/application/services"
	"wada-stylist/internal/application/usecases"
	"wada-stylist/internal/domain/entities"
	domainservices "wada-stylist/internal/domain/services"
	"wada-stylist/internal/domain/valueobjects"
	"wada-stylist/internal/infrastructure/queue"
	"wada-stylist/internal/infrastructure/repositories"
)

const visionAnswer = "Shirt: Scarlet\nPants: Olive Buff\ngender: male"

type stubVision struct {
	text string
	err  error
}

func (s *stubVision) AnalyzeColors(ctx context.Context, request *entities.AnalysisRequest, prompt string) (string, error) {
	return s.text, s.err
}

func (s *stubVision) Close() error {
	return nil
}

type stubImages struct {
	image *valueobjects.ImageData
	err   error
}

func (s *stubImages) GenerateOutfit(ctx context.Context, request *entities.OutfitRequest) (*entities.OutfitResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return entities.NewOutfitResult("here you go", s.image), nil
}

type stubDescriber struct {
	text string
}

func (s *stubDescriber) DescribeOutfit(ctx context.Context, request *entities.AnalysisRequest, prompt string) (string, error) {
	return s.text, nil
}

type testServer struct {
	router    *mux.Router
	analytics *repositories.MemoryAnalyticsRepository
	tracker   *queue.InlineTracker
	images    *stubImages
	vision    *stubVision
}

func newTestPalette() *entities.Palette {
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

func rawPNG() []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	return rawPNG()
}

func imageJSON(t *testing.T) string {
	return `{"image":"` + base64.StdEncoding.EncodeToString(pngBytes(t)) + `","mimeType":"image/png"}`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	generated, err := valueobjects.NewImageData(pngBytes(t), "image/png")
	require.NoError(t, err)

	palette := newTestPalette()
	dir := t.TempDir()
	sessions := repositories.NewMemorySessionRepository(time.Hour)
	images, err := repositories.NewFilesystemImageRepository(dir)
	require.NoError(t, err)
	analytics := repositories.NewMemoryAnalyticsRepository()
	tracker := queue.NewInlineTracker(analytics, 2, 16)
	t.Cleanup(func() { tracker.Close(context.Background()) })

	vision := &stubVision{text: visionAnswer}
	imageService := &stubImages{image: generated}
	describer := &stubDescriber{text: `{"gender":"male","items":[{"type":"blazer","color":"navy"}]}`}
	params := services.NewParameterService()

	handlers := Handlers{
		Analyze: NewAnalyzeHandler(
			usecases.NewAnalyzeUseCase(sessions, domainservices.NewColorAnalysisDomainService(vision, palette), tracker, "gemini-2.0-flash"),
			usecases.NewSelectionUseCase(sessions),
			params,
		),
		Generate: NewGenerateHandler(
			usecases.NewGenerateUseCase(sessions, images, domainservices.NewOutfitDomainService(imageService), tracker, palette, "gemini-2.5-flash-image", false),
			params,
		),
		Analytics: NewAnalyticsHandler(usecases.NewAnalyticsUseCase(analytics, tracker, palette), params),
		Gallery:   NewGalleryHandler(usecases.NewGalleryUseCase(images, sessions)),
		Shopping: NewShoppingHandler(
			usecases.NewShoppingUseCase(domainservices.NewOutfitDescriptionDomainService(describer, "English"), "gemini-2.0-flash"),
			params,
		),
		Palette: NewPaletteHandler(usecases.NewPaletteUseCase(palette)),
	}

	return &testServer{
		router:    NewRouter(handlers, RouterConfig{GeneratedDir: dir, SessionTTL: 2 * time.Hour}),
		analytics: analytics,
		tracker:   tracker,
		images:    imageService,
		vision:    vision,
	}
}

// do sends one request through the router, carrying the session cookie when given.
func (s *testServer) do(t *testing.T, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
