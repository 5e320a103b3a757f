package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"wada-stylist/internal/domain/entities"
	domainrepos "wada-stylist/internal/domain/repositories"
)

type PostgresAnalyticsRepository struct {
	db *sqlx.DB
}

// OpenPostgres opens the pool with the same limits the analytics service has always used.
func OpenPostgres(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetConnMaxIdleTime(30 * time.Second)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}

func NewPostgresAnalyticsRepository(db *sqlx.DB) domainrepos.AnalyticsRepository {
	return &PostgresAnalyticsRepository{db: db}
}

func (r *PostgresAnalyticsRepository) RecordVisit(ctx context.Context, visit entities.Visit) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO visits (user_id, user_agent) VALUES ($1, $2)`,
		visit.UserID, visit.UserAgent,
	); err != nil {
		return fmt.Errorf("failed to insert visit: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO user_actions (user_id, entry_timestamp, generate_count)
		VALUES ($1, NOW(), 0)
		ON CONFLICT (user_id) DO NOTHING`,
		visit.UserID,
	); err != nil {
		return fmt.Errorf("failed to upsert user action: %w", err)
	}

	return tx.Commit()
}

func (r *PostgresAnalyticsRepository) IncrementColor(ctx context.Context, color entities.ColorSelection) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO color_stats (name, hex, index, count, updated_at)
		VALUES ($1, $2, $3, 1, NOW())
		ON CONFLICT (name)
		DO UPDATE SET
			count = color_stats.count + 1,
			updated_at = NOW()`,
		color.Name, color.Hex, color.Index,
	)
	if err != nil {
		return fmt.Errorf("failed to increment color: %w", err)
	}
	return nil
}

func (r *PostgresAnalyticsRepository) RecordCombination(ctx context.Context, selection entities.CombinationSelection) error {
	colors, err := json.Marshal(selection.Colors)
	if err != nil {
		return fmt.Errorf("failed to encode colors: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO combination_selections (combination_index, colors, user_id) VALUES ($1, $2, $3)`,
		selection.CombinationIndex, string(colors), selection.UserID,
	); err != nil {
		return fmt.Errorf("failed to insert combination selection: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO user_actions (user_id, generate_count, last_generate_timestamp)
		VALUES ($1, 1, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET
			generate_count = user_actions.generate_count + 1,
			last_generate_timestamp = NOW()`,
		selection.UserID,
	); err != nil {
		return fmt.Errorf("failed to increment generate count: %w", err)
	}

	return tx.Commit()
}

func (r *PostgresAnalyticsRepository) IncrementGender(ctx context.Context, gender string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO gender_stats (gender, count, last_updated)
		VALUES ($1, 1, NOW())
		ON CONFLICT (gender)
		DO UPDATE SET
			count = gender_stats.count + 1,
			last_updated = NOW()`,
		gender,
	)
	if err != nil {
		return fmt.Errorf("failed to increment gender: %w", err)
	}
	return nil
}

func (r *PostgresAnalyticsRepository) TopColors(ctx context.Context, limit int) ([]entities.ColorStat, error) {
	stats := []entities.ColorStat{}
	err := r.db.SelectContext(ctx, &stats,
		`SELECT name, hex, COALESCE(index, 0) AS index, COALESCE(count, 0) AS count
		 FROM color_stats
		 ORDER BY count DESC, index ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query color stats: %w", err)
	}
	return stats, nil
}

type combinationStatRow struct {
	CombinationIndex int       `db:"combination_index"`
	Colors           []byte    `db:"colors"`
	Count            int       `db:"count"`
	LastSelected     time.Time `db:"last_selected"`
}

func (r *PostgresAnalyticsRepository) TopCombinations(ctx context.Context, limit int) ([]entities.CombinationStat, error) {
	rows := []combinationStatRow{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT
			combination_index,
			colors,
			COUNT(*) AS count,
			MAX(timestamp) AS last_selected
		FROM combination_selections
		GROUP BY combination_index, colors
		ORDER BY COUNT(*) DESC, combination_index ASC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query combination stats: %w", err)
	}

	stats := make([]entities.CombinationStat, 0, len(rows))
	for _, row := range rows {
		var colors []string
		if err := json.Unmarshal(row.Colors, &colors); err != nil {
			return nil, fmt.Errorf("failed to decode colors of combination %d: %w", row.CombinationIndex, err)
		}
		stats = append(stats, entities.CombinationStat{
			CombinationIndex: row.CombinationIndex,
			Colors:           colors,
			Count:            row.Count,
			LastSelected:     row.LastSelected,
		})
	}
	return stats, nil
}

func (r *PostgresAnalyticsRepository) RecentVisits(ctx context.Context, limit int) ([]entities.Visit, error) {
	visits := []entities.Visit{}
	err := r.db.SelectContext(ctx, &visits,
		`SELECT user_id, timestamp, COALESCE(user_agent, '') AS user_agent
		 FROM visits
		 ORDER BY timestamp DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}
	return visits, nil
}

func (r *PostgresAnalyticsRepository) GenderStats(ctx context.Context) ([]entities.GenderStat, error) {
	stats := []entities.GenderStat{}
	if err := r.db.SelectContext(ctx, &stats, `SELECT gender, count FROM gender_stats ORDER BY count DESC`); err != nil {
		return nil, fmt.Errorf("failed to query gender stats: %w", err)
	}
	return stats, nil
}

func (r *PostgresAnalyticsRepository) CountColors(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM color_stats`); err != nil {
		return 0, fmt.Errorf("failed to count color stats: %w", err)
	}
	return total, nil
}

func (r *PostgresAnalyticsRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
