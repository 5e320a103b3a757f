package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendGemini = "gemini"
	BackendVertex = "vertex"
)

type Config struct {
	Port string

	GeminiAPIKey    string
	GeminiBananaKey string
	AnalysisBackend string
	ProjectID       string
	Location        string
	AnalysisModel   string
	ImageModel      string

	AnalysisTimeout   time.Duration
	GenerationTimeout time.Duration

	PalettePath      string
	CombinationsPath string
	GeneratedDir     string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	SessionTTL    time.Duration

	UseMockImage   bool
	MockImagePath  string
	MockImageDelay time.Duration

	DescriptionLanguage string
	TrackingWorkers     int
	LogLevel            slog.Level
}

// Load reads .env (when present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		AnalysisBackend:     strings.ToLower(getEnv("ANALYSIS_BACKEND", BackendGemini)),
		Location:            getEnv("LOCATION", "us-central1"),
		AnalysisModel:       getEnv("ANALYSIS_MODEL", "gemini-2.0-flash"),
		ImageModel:          getEnv("IMAGE_MODEL", "gemini-2.5-flash-image"),
		PalettePath:         getEnv("PALETTE_PATH", "data/color.json"),
		CombinationsPath:    getEnv("COMBINATIONS_PATH", "data/combined_colors.json"),
		GeneratedDir:        getEnv("GENERATED_DIR", "generated"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		UseMockImage:        getBool("USE_MOCK_IMAGE", false),
		MockImagePath:       getEnv("MOCK_IMAGE_PATH", "generated.png"),
		DescriptionLanguage: getEnv("DESCRIPTION_LANGUAGE", "Turkish"),
	}

	cfg.GeminiBananaKey = getEnv("GEMINI_BANANA_KEY", cfg.GeminiAPIKey)

	cfg.ProjectID = os.Getenv("PROJECT_ID")
	if cfg.ProjectID == "" {
		cfg.ProjectID = os.Getenv("GOOGLE_CLOUD_PROJECT")
	}

	var err error
	if cfg.AnalysisTimeout, err = getDuration("ANALYSIS_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.GenerationTimeout, err = getDuration("GENERATION_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 2*time.Hour); err != nil {
		return nil, err
	}
	if cfg.MockImageDelay, err = getDuration("MOCK_IMAGE_DELAY", 2*time.Second); err != nil {
		return nil, err
	}
	if cfg.TrackingWorkers, err = getInt("TRACKING_WORKERS", 4); err != nil {
		return nil, err
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	cfg.DatabaseURL = databaseURL()
	cfg.RedisAddr = redisAddr()

	return cfg, nil
}

// Validate reports missing settings for the configured backends.
func (c *Config) Validate() error {
	var errs []error

	switch c.AnalysisBackend {
	case BackendGemini:
		if c.GeminiAPIKey == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY is required"))
		}
	case BackendVertex:
		if c.ProjectID == "" {
			errs = append(errs, errors.New("PROJECT_ID is required for the vertex backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown ANALYSIS_BACKEND %q", c.AnalysisBackend))
	}

	if !c.UseMockImage && c.GeminiBananaKey == "" {
		errs = append(errs, errors.New("GEMINI_BANANA_KEY (or GEMINI_API_KEY) is required unless USE_MOCK_IMAGE is set"))
	}

	if c.TrackingWorkers < 1 {
		errs = append(errs, errors.New("TRACKING_WORKERS must be at least 1"))
	}

	return errors.Join(errs...)
}

// databaseURL prefers DATABASE_URL and otherwise assembles one from POSTGRES_* settings.
func databaseURL() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		return ""
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(os.Getenv("POSTGRES_USER"), os.Getenv("POSTGRES_PASSWORD")),
		Host:   host + ":" + getEnv("POSTGRES_PORT", "5432"),
		Path:   "/" + os.Getenv("POSTGRES_DB"),
	}
	q := u.Query()
	q.Set("sslmode", getEnv("POSTGRES_SSLMODE", "disable"))
	u.RawQuery = q.Encode()

	return u.String()
}

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return ""
	}
	return host + ":" + getEnv("REDIS_PORT", "6379")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
