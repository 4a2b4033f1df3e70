// Package db owns the Postgres schema. Migrate is idempotent and runs at
// API startup, so a fresh database needs no out-of-band setup.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS activity_sessions (
		user_id    TEXT NOT NULL,
		day        TEXT NOT NULL,
		session_id TEXT NOT NULL,
		minutes    DOUBLE PRECISION NOT NULL DEFAULT 0,
		country    TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (user_id, day, session_id)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_activity_sessions_user_day ON activity_sessions (user_id, day DESC);`,

	`CREATE TABLE IF NOT EXISTS events (
		id         UUID PRIMARY KEY,
		user_id    TEXT NOT NULL,
		title      TEXT NOT NULL,
		date       TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_events_user ON events (user_id, date);`,

	`CREATE TABLE IF NOT EXISTS notes (
		id         UUID PRIMARY KEY,
		user_id    TEXT NOT NULL,
		title      TEXT NOT NULL,
		content    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_notes_user_created ON notes (user_id, created_at DESC);`,

	`CREATE TABLE IF NOT EXISTS timer_sessions (
		user_id       TEXT PRIMARY KEY,
		focus_time    INTEGER NOT NULL,
		rest_time     INTEGER NOT NULL,
		time_left     INTEGER NOT NULL,
		is_focus_mode BOOLEAN NOT NULL DEFAULT true,
		is_running    BOOLEAN NOT NULL DEFAULT false,
		start_time    TIMESTAMPTZ,
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
}

// Migrate applies the schema.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
