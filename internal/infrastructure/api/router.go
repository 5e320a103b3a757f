package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"wada-stylist/internal/application/services"
)

type Handlers struct {
	Analyze   *AnalyzeHandler
	Generate  *GenerateHandler
	Analytics *AnalyticsHandler
	Gallery   *GalleryHandler
	Shopping  *ShoppingHandler
	Palette   *PaletteHandler
}

type RouterConfig struct {
	GeneratedDir string
	SessionTTL   time.Duration
}

func NewRouter(h Handlers, cfg RouterConfig) *mux.Router {
	r := mux.NewRouter()
	r.Use(SecurityHeadersMiddleware, SessionMiddleware(cfg.SessionTTL), BodyLimitMiddleware(services.MaxBodySize))

	r.HandleFunc("/healthz", HandleHealth).Methods("GET")

	// 解析と選択
	r.HandleFunc("/api/analyze-image", h.Analyze.HandleAnalyzeImage).Methods("POST")
	r.HandleFunc("/api/selection", h.Analyze.HandleSelection).Methods("GET")
	r.HandleFunc("/api/selection", h.Analyze.HandleClearSelection).Methods("DELETE")
	r.HandleFunc("/api/selection/garments", h.Analyze.HandleToggleGarment).Methods("POST")
	r.HandleFunc("/api/selection/combination", h.Analyze.HandleSelectCombination).Methods("POST")
	r.HandleFunc("/api/selection/style", h.Analyze.HandleSetStyle).Methods("POST")
	r.HandleFunc("/api/selection/color-filter", h.Analyze.HandleSetColorFilter).Methods("POST")

	r.HandleFunc("/api/generate-image", h.Generate.HandleGenerateImage).Methods("POST")

	// 集計
	r.HandleFunc("/api/track/visit", h.Analytics.HandleTrackVisit).Methods("POST")
	r.HandleFunc("/api/track/color", h.Analytics.HandleTrackColor).Methods("POST")
	r.HandleFunc("/api/track/combination", h.Analytics.HandleTrackCombination).Methods("POST")
	r.HandleFunc("/api/track/gender", h.Analytics.HandleTrackGender).Methods("POST")
	r.HandleFunc("/api/analytics", h.Analytics.HandleAnalytics).Methods("GET")
	r.HandleFunc("/api/color-stats", h.Analytics.HandleColorStats).Methods("GET")
	r.HandleFunc("/api/popular-colors", h.Analytics.HandlePopularColors).Methods("GET")
	r.HandleFunc("/api/popular-combinations", h.Analytics.HandlePopularCombinations).Methods("GET")

	r.HandleFunc("/api/session-images", h.Gallery.HandleSessionImages).Methods("GET")
	r.HandleFunc("/api/session-images/{filename}", h.Gallery.HandleDeleteImage).Methods("DELETE")
	r.HandleFunc("/api/session-info", h.Gallery.HandleSessionInfo).Methods("GET")
	r.HandleFunc("/api/cleanup-session", h.Gallery.HandleCleanupSession).Methods("POST")

	r.HandleFunc("/api/analyze-outfit", h.Shopping.HandleAnalyzeOutfit).Methods("POST")
	r.HandleFunc("/api/analyze-outfit-turkish", h.Shopping.HandleAnalyzeOutfit).Methods("POST")
	r.HandleFunc("/api/search-clothing-sites", h.Shopping.HandleSearchSites).Methods("POST")

	r.HandleFunc("/api/palette/colors", h.Palette.HandleColors).Methods("GET")
	r.HandleFunc("/api/palette/colors/{index:[0-9]+}", h.Palette.HandleColor).Methods("GET")
	r.HandleFunc("/api/palette/combinations", h.Palette.HandleCombinations).Methods("GET")
	r.HandleFunc("/api/palette/combinations/{index:[0-9]+}", h.Palette.HandleCombination).Methods("GET")

	// 生成画像の配信
	r.PathPrefix("/generated/").Handler(http.StripPrefix("/generated/", noDirectoryListing(http.FileServer(http.Dir(cfg.GeneratedDir))))).Methods("GET")

	return r
}

func noDirectoryListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
