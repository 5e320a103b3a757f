package repositories

import (
	"context"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"wada-stylist/internal/domain/entities"
	domainrepos "wada-stylist/internal/domain/repositories"
)

type userAction struct {
	entryTimestamp        time.Time
	lastGenerateTimestamp time.Time
	generateCount         int
}

type combinationRow struct {
	index     int
	colors    []string
	userID    string
	timestamp time.Time
}

// MemoryAnalyticsRepository keeps the counters in process. Used when no database is configured.
type MemoryAnalyticsRepository struct {
	visits       []entities.Visit
	colors       map[string]*entities.ColorStat
	combinations []combinationRow
	genders      map[string]int
	users        map[string]*userAction
	now          func() time.Time
	mu           sync.RWMutex
}

func NewMemoryAnalyticsRepository() *MemoryAnalyticsRepository {
	return &MemoryAnalyticsRepository{
		colors:  make(map[string]*entities.ColorStat),
		genders: make(map[string]int),
		users:   make(map[string]*userAction),
		now:     time.Now,
	}
}

var _ domainrepos.AnalyticsRepository = (*MemoryAnalyticsRepository)(nil)

func (r *MemoryAnalyticsRepository) RecordVisit(ctx context.Context, visit entities.Visit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if visit.Timestamp.IsZero() {
		visit.Timestamp = r.now()
	}
	r.visits = append(r.visits, visit)

	if _, exists := r.users[visit.UserID]; !exists {
		r.users[visit.UserID] = &userAction{entryTimestamp: visit.Timestamp}
	}
	return nil
}

func (r *MemoryAnalyticsRepository) IncrementColor(ctx context.Context, color entities.ColorSelection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stat, exists := r.colors[color.Name]; exists {
		stat.Count++
		return nil
	}
	r.colors[color.Name] = &entities.ColorStat{Name: color.Name, Hex: color.Hex, Index: color.Index, Count: 1}
	return nil
}

func (r *MemoryAnalyticsRepository) RecordCombination(ctx context.Context, selection entities.CombinationSelection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.combinations = append(r.combinations, combinationRow{
		index:     selection.CombinationIndex,
		colors:    slices.Clone(selection.Colors),
		userID:    selection.UserID,
		timestamp: now,
	})

	user, exists := r.users[selection.UserID]
	if !exists {
		user = &userAction{}
		r.users[selection.UserID] = user
	}
	user.generateCount++
	user.lastGenerateTimestamp = now
	return nil
}

func (r *MemoryAnalyticsRepository) IncrementGender(ctx context.Context, gender string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.genders[gender]++
	return nil
}

func (r *MemoryAnalyticsRepository) TopColors(ctx context.Context, limit int) ([]entities.ColorStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := make([]entities.ColorStat, 0, len(r.colors))
	for _, s := range r.colors {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Index < stats[j].Index
	})
	return truncate(stats, limit), nil
}

// TopCombinations groups by (index, colors) like the SQL query does.
func (r *MemoryAnalyticsRepository) TopCombinations(ctx context.Context, limit int) ([]entities.CombinationStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	groups := make(map[string]*entities.CombinationStat)
	for _, row := range r.combinations {
		key := strings.Join(append([]string{strconv.Itoa(row.index)}, row.colors...), "\x00")
		stat, exists := groups[key]
		if !exists {
			stat = &entities.CombinationStat{CombinationIndex: row.index, Colors: slices.Clone(row.colors)}
			groups[key] = stat
		}
		stat.Count++
		if row.timestamp.After(stat.LastSelected) {
			stat.LastSelected = row.timestamp
		}
	}

	stats := make([]entities.CombinationStat, 0, len(groups))
	for _, s := range groups {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		if stats[i].CombinationIndex != stats[j].CombinationIndex {
			return stats[i].CombinationIndex < stats[j].CombinationIndex
		}
		return strings.Join(stats[i].Colors, ",") < strings.Join(stats[j].Colors, ",")
	})
	return truncate(stats, limit), nil
}

func (r *MemoryAnalyticsRepository) RecentVisits(ctx context.Context, limit int) ([]entities.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	visits := slices.Clone(r.visits)
	sort.SliceStable(visits, func(i, j int) bool { return visits[i].Timestamp.After(visits[j].Timestamp) })
	return truncate(visits, limit), nil
}

func (r *MemoryAnalyticsRepository) GenderStats(ctx context.Context) ([]entities.GenderStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := make([]entities.GenderStat, 0, len(r.genders))
	for g, c := range r.genders {
		stats = append(stats, entities.GenderStat{Gender: g, Count: c})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Gender < stats[j].Gender
	})
	return stats, nil
}

func (r *MemoryAnalyticsRepository) CountColors(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.colors), nil
}

func (r *MemoryAnalyticsRepository) Ping(ctx context.Context) error {
	return nil
}

// GenerateCount reports how many generations a user triggered.
func (r *MemoryAnalyticsRepository) GenerateCount(userID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.users[userID]; ok {
		return u.generateCount
	}
	return 0
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
