package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	appservices "wada-stylist/internal/application/services"
	"wada-stylist/internal/application/usecases"
	"wada-stylist/internal/config"
	domainrepos "wada-stylist/internal/domain/repositories"
	domainservices "wada-stylist/internal/domain/services"
	"wada-stylist/internal/infrastructure/api"
	"wada-stylist/internal/infrastructure/external"
	"wada-stylist/internal/infrastructure/queue"
	"wada-stylist/internal/infrastructure/repositories"
	infraservices "wada-stylist/internal/infrastructure/services"
)

const trackingBuffer = 256

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	log.Printf("[boot] ANALYSIS_BACKEND=%s ANALYSIS_MODEL=%s IMAGE_MODEL=%s", cfg.AnalysisBackend, cfg.AnalysisModel, cfg.ImageModel)
	log.Printf("[boot] USE_MOCK_IMAGE=%v", cfg.UseMockImage)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// パレット
	palette, err := repositories.NewJSONPaletteRepository(cfg.PalettePath, cfg.CombinationsPath).Load()
	if err != nil {
		log.Fatalf("Failed to load palette: %v", err)
	}
	log.Printf("[boot] Palette loaded: %d colors, %d combinations", palette.Len(), palette.CombinationCount())

	// インフラ層を初期化
	clientPool := infraservices.NewClientPoolService(cfg.ProjectID, cfg.Location)
	defer clientPool.Close()

	var colorAnalysis domainrepos.ColorAnalysisService
	switch cfg.AnalysisBackend {
	case config.BackendVertex:
		colorAnalysis = external.NewVertexAIService(clientPool.VertexAIPool(), cfg.AnalysisModel, cfg.AnalysisTimeout)
	default:
		colorAnalysis = external.NewGeminiAIService(clientPool.GenAIPool(), cfg.GeminiAPIKey, cfg.AnalysisModel, cfg.AnalysisTimeout)
	}
	defer colorAnalysis.Close()

	describer := external.NewGeminiAIService(clientPool.GenAIPool(), cfg.GeminiAPIKey, cfg.AnalysisModel, cfg.AnalysisTimeout)

	var outfitImages domainrepos.OutfitImageService
	if cfg.UseMockImage {
		outfitImages = external.NewMockImageService(cfg.MockImagePath, cfg.MockImageDelay)
		log.Printf("[boot] TESTING MODE: serving %s instead of calling the image model", cfg.MockImagePath)
	} else {
		outfitImages = external.NewGeminiImageService(clientPool.GenAIPool(), cfg.GeminiBananaKey, cfg.GenerationTimeout)
	}

	analytics := newAnalyticsRepository(ctx, cfg)

	imageRepository, err := repositories.NewFilesystemImageRepository(cfg.GeneratedDir)
	if err != nil {
		log.Fatalf("Failed to prepare generated image folder: %v", err)
	}

	var (
		sessions     domainrepos.SessionRepository
		tracker      domainrepos.AnalyticsTracker
		shutdownTask func(context.Context)
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to redis at %s: %v", cfg.RedisAddr, err)
		}
		sessions = repositories.NewRedisSessionRepository(redisClient, cfg.SessionTTL)

		redisOpt := asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword}
		asynqTracker := queue.NewAsynqTracker(redisOpt, trackingBuffer)
		stopWorker, err := queue.StartWorker(redisOpt, analytics, cfg.TrackingWorkers)
		if err != nil {
			log.Fatalf("Failed to start analytics worker: %v", err)
		}
		tracker = asynqTracker
		shutdownTask = func(ctx context.Context) {
			if err := asynqTracker.Close(ctx); err != nil {
				slog.Warn("Analytics events not enqueued", "error", err)
			}
			stopWorker()
		}
		log.Printf("[boot] Sessions and analytics queue on redis %s", cfg.RedisAddr)
	} else {
		sessions = repositories.NewMemorySessionRepository(cfg.SessionTTL)
		inlineTracker := queue.NewInlineTracker(analytics, cfg.TrackingWorkers, trackingBuffer)
		tracker = inlineTracker
		shutdownTask = func(ctx context.Context) {
			if err := inlineTracker.Close(ctx); err != nil {
				slog.Warn("Analytics events left unprocessed", "error", err)
			}
		}
		log.Printf("[boot] REDIS_ADDR not set, using in-memory sessions and in-process analytics")
	}

	// ドメイン層を初期化
	analysisDomainService := domainservices.NewColorAnalysisDomainService(colorAnalysis, palette)
	outfitDomainService := domainservices.NewOutfitDomainService(outfitImages)
	descriptionDomainService := domainservices.NewOutfitDescriptionDomainService(describer, cfg.DescriptionLanguage)

	// アプリケーション層を初期化
	parameterService := appservices.NewParameterService()
	analyzeUseCase := usecases.NewAnalyzeUseCase(sessions, analysisDomainService, tracker, cfg.AnalysisModel)
	selectionUseCase := usecases.NewSelectionUseCase(sessions)
	generateUseCase := usecases.NewGenerateUseCase(sessions, imageRepository, outfitDomainService, tracker, palette, cfg.ImageModel, cfg.UseMockImage)
	analyticsUseCase := usecases.NewAnalyticsUseCase(analytics, tracker, palette)
	galleryUseCase := usecases.NewGalleryUseCase(imageRepository, sessions)
	shoppingUseCase := usecases.NewShoppingUseCase(descriptionDomainService, cfg.AnalysisModel)
	paletteUseCase := usecases.NewPaletteUseCase(palette)

	// API層を初期化
	router := api.NewRouter(api.Handlers{
		Analyze:   api.NewAnalyzeHandler(analyzeUseCase, selectionUseCase, parameterService),
		Generate:  api.NewGenerateHandler(generateUseCase, parameterService),
		Analytics: api.NewAnalyticsHandler(analyticsUseCase, parameterService),
		Gallery:   api.NewGalleryHandler(galleryUseCase),
		Shopping:  api.NewShoppingHandler(shoppingUseCase, parameterService),
		Palette:   api.NewPaletteHandler(paletteUseCase),
	}, api.RouterConfig{
		GeneratedDir: cfg.GeneratedDir,
		SessionTTL:   cfg.SessionTTL,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      90 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	shutdownTask(shutdownCtx)
}

// newAnalyticsRepository uses postgres when configured and keeps counters in memory otherwise.
func newAnalyticsRepository(ctx context.Context, cfg *config.Config) domainrepos.AnalyticsRepository {
	if cfg.DatabaseURL == "" {
		log.Printf("[boot] No database configured, analytics kept in memory")
		return repositories.NewMemoryAnalyticsRepository()
	}

	db, err := repositories.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	if err := repositories.CreateSchema(ctx, db); err != nil {
		log.Fatalf("Failed to create analytics schema: %v", err)
	}

	log.Printf("[boot] Connected to PostgreSQL")
	return repositories.NewPostgresAnalyticsRepository(db)
}
