package repositories

import (
	"context"

	"wada-stylist/internal/domain/entities"
)

type AnalyticsRepository interface {
	RecordVisit(ctx context.Context, visit entities.Visit) error
	IncrementColor(ctx context.Context, color entities.ColorSelection) error
	RecordCombination(ctx context.Context, selection entities.CombinationSelection) error
	IncrementGender(ctx context.Context, gender string) error

	TopColors(ctx context.Context, limit int) ([]entities.ColorStat, error)
	TopCombinations(ctx context.Context, limit int) ([]entities.CombinationStat, error)
	RecentVisits(ctx context.Context, limit int) ([]entities.Visit, error)
	GenderStats(ctx context.Context) ([]entities.GenderStat, error)
	CountColors(ctx context.Context) (int, error)

	Ping(ctx context.Context) error
}

// AnalyticsTracker dispatches analytics writes off the request path.
// Implementations log their own failures; callers never see them.
type AnalyticsTracker interface {
	TrackVisit(ctx context.Context, visit entities.Visit)
	TrackColor(ctx context.Context, color entities.ColorSelection)
	TrackCombination(ctx context.Context, selection entities.CombinationSelection)
	TrackGender(ctx context.Context, gender string)
}
