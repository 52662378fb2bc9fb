package repository

import (
	"context"
	"fmt"
)

const (
	weatherTable = "weather_records"
	historyTable = "outfit_history"
)

// schema sticks to column types and statements that Postgres and SQLite
// both accept.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS weather_records (
		id           TEXT PRIMARY KEY,
		date         TEXT NOT NULL,
		location     TEXT NOT NULL,
		temperature  DOUBLE PRECISION NOT NULL,
		weather_type TEXT NOT NULL,
		humidity     INTEGER NOT NULL,
		wind_speed   DOUBLE PRECISION NOT NULL,
		description  TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS weather_records_date_location
		ON weather_records (date, location)`,
	`CREATE TABLE IF NOT EXISTS outfit_history (
		id           TEXT PRIMARY KEY,
		user_id      BIGINT,
		date         TEXT NOT NULL,
		outfit_data  TEXT NOT NULL,
		weather_info TEXT,
		created_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS outfit_history_user_date
		ON outfit_history (user_id, date)`,
}

// Migrate creates the tables and indexes if they do not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.DB().ExecContext(ctx, stmt); err != nil {
			s.logger.Error("migration failed", "error", err)
			return fmt.Errorf("migrate: %w", err)
		}
	}
	s.logger.Info("database schema up to date", "dialect", s.dialect)
	return nil
}
