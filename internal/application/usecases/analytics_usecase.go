package usecases

import (
	"context"
	"log/slog"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/repositories"
	"wada-stylist/internal/domain/valueobjects"
)

const (
	// AnalyzerSource marks color picks made on the analyzer page, the only ones counted.
	AnalyzerSource = "analyzer"

	overviewLimit   = 10
	recentVisits    = 100
	popularityLimit = 4
)

type AnalyticsUseCase struct {
	repo    repositories.AnalyticsRepository
	tracker repositories.AnalyticsTracker
	palette *entities.Palette
}

func NewAnalyticsUseCase(
	repo repositories.AnalyticsRepository,
	tracker repositories.AnalyticsTracker,
	palette *entities.Palette,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		repo:    repo,
		tracker: tracker,
		palette: palette,
	}
}

type AnalyticsOverview struct {
	TopColors       []entities.ColorStat       `json:"topColors"`
	TopCombinations []entities.CombinationStat `json:"topCombinations"`
	RecentVisits    []entities.Visit           `json:"recentVisits"`
	GenderStats     []entities.GenderStat      `json:"genderStats"`
	ColorStats      []entities.ColorStat       `json:"colorStats"`
}

type ColorStatsOutput struct {
	TotalColors int                  `json:"totalColors"`
	ColorStats  []entities.ColorStat `json:"colorStats"`
}

func (uc *AnalyticsUseCase) TrackVisit(ctx context.Context, userID, userAgent string) {
	if userID == "" {
		userID = entities.AnonymousUser
	}
	uc.tracker.TrackVisit(ctx, entities.Visit{UserID: userID, UserAgent: userAgent})
}

// TrackColor counts the pick only for the analyzer page and reports whether it was counted.
func (uc *AnalyticsUseCase) TrackColor(ctx context.Context, color entities.ColorSelection, source string) (bool, error) {
	if source != AnalyzerSource {
		return false, nil
	}
	if color.Name == "" {
		return false, valueobjects.NewValidationFailure("Color name is required")
	}
	uc.tracker.TrackColor(ctx, color)
	return true, nil
}

func (uc *AnalyticsUseCase) TrackCombination(ctx context.Context, selection entities.CombinationSelection) error {
	if len(selection.Colors) == 0 {
		return valueobjects.NewValidationFailure("Combination colors are required")
	}
	if selection.UserID == "" {
		selection.UserID = entities.AnonymousUser
	}
	uc.tracker.TrackCombination(ctx, selection)
	return nil
}

func (uc *AnalyticsUseCase) TrackGender(ctx context.Context, gender string) error {
	if gender == "" {
		return valueobjects.NewValidationFailure("Gender is required")
	}
	uc.tracker.TrackGender(ctx, gender)
	return nil
}

func (uc *AnalyticsUseCase) Overview(ctx context.Context) (*AnalyticsOverview, error) {
	topColors, err := uc.repo.TopColors(ctx, overviewLimit)
	if err != nil {
		return nil, storeFailure("Failed to fetch analytics", err)
	}
	topCombinations, err := uc.repo.TopCombinations(ctx, overviewLimit)
	if err != nil {
		return nil, storeFailure("Failed to fetch analytics", err)
	}
	visits, err := uc.repo.RecentVisits(ctx, recentVisits)
	if err != nil {
		return nil, storeFailure("Failed to fetch analytics", err)
	}
	genders, err := uc.repo.GenderStats(ctx)
	if err != nil {
		return nil, storeFailure("Failed to fetch analytics", err)
	}

	return &AnalyticsOverview{
		TopColors:       topColors,
		TopCombinations: topCombinations,
		RecentVisits:    visits,
		GenderStats:     genders,
		ColorStats:      topColors,
	}, nil
}

func (uc *AnalyticsUseCase) ColorStats(ctx context.Context) (*ColorStatsOutput, error) {
	total, err := uc.repo.CountColors(ctx)
	if err != nil {
		return nil, storeFailure("Failed to fetch color stats", err)
	}
	stats, err := uc.repo.TopColors(ctx, overviewLimit)
	if err != nil {
		return nil, storeFailure("Failed to fetch color stats", err)
	}
	return &ColorStatsOutput{TotalColors: total, ColorStats: stats}, nil
}

// PopularColors returns the most picked colors joined with their palette entries.
func (uc *AnalyticsUseCase) PopularColors(ctx context.Context) ([]entities.PopularColor, error) {
	stats, err := uc.repo.TopColors(ctx, popularityLimit)
	if err != nil {
		return nil, storeFailure("Failed to fetch popular colors", err)
	}

	popular := make([]entities.PopularColor, 0, len(stats))
	for _, s := range stats {
		p := entities.PopularColor{
			Name:           s.Name,
			Hex:            s.Hex,
			Index:          s.Index,
			SelectionCount: s.Count,
		}
		if color, ok := uc.palette.ExactColor(s.Name); ok {
			p.RGB = color.RGB
			p.Combinations = color.Combinations
		}
		popular = append(popular, p)
	}
	return popular, nil
}

func (uc *AnalyticsUseCase) PopularCombinations(ctx context.Context) ([]entities.CombinationStat, error) {
	stats, err := uc.repo.TopCombinations(ctx, popularityLimit)
	if err != nil {
		return nil, storeFailure("Failed to fetch popular combinations", err)
	}
	return stats, nil
}

func storeFailure(message string, err error) error {
	slog.Error(message, "error", err)
	return valueobjects.NewFailure(valueobjects.FailureInternal, message, err).WithUserMessage(message)
}
