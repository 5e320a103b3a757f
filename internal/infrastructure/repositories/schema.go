package repositories

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// CreateSchema creates the analytics tables and indexes when missing.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS visits (
			id SERIAL PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL,
			timestamp TIMESTAMPTZ DEFAULT NOW(),
			user_agent TEXT
		);`,

		`CREATE TABLE IF NOT EXISTS color_stats (
			name VARCHAR(255) PRIMARY KEY,
			hex VARCHAR(255) NOT NULL,
			index INTEGER,
			count INTEGER DEFAULT 0,
			updated_at TIMESTAMPTZ DEFAULT NOW()
		);`,

		`CREATE TABLE IF NOT EXISTS combination_selections (
			id SERIAL PRIMARY KEY,
			combination_index INTEGER NOT NULL,
			colors JSONB NOT NULL,
			user_id VARCHAR(255) NOT NULL,
			timestamp TIMESTAMPTZ DEFAULT NOW()
		);`,

		`CREATE TABLE IF NOT EXISTS gender_stats (
			gender VARCHAR(50) PRIMARY KEY,
			count INTEGER DEFAULT 0,
			last_updated TIMESTAMPTZ DEFAULT NOW()
		);`,

		`CREATE TABLE IF NOT EXISTS user_actions (
			user_id VARCHAR(255) PRIMARY KEY,
			entry_timestamp TIMESTAMPTZ,
			last_generate_timestamp TIMESTAMPTZ,
			generate_count INTEGER DEFAULT 0
		);`,

		`CREATE INDEX IF NOT EXISTS idx_visits_timestamp ON visits(timestamp);`,
		`CREATE INDEX IF NOT EXISTS idx_combination_selections_user ON combination_selections(user_id);`,
		`CREATE INDEX IF NOT EXISTS idx_combination_selections_timestamp ON combination_selections(timestamp);`,
	}

	for _, q := range queries {
		if _, err := db.ExecContext(ctx, q); err != nil {
			slog.Error("Error executing schema query", "query", q, "error", err)
			return err
		}
	}

	return nil
}
