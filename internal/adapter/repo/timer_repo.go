package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Prtik12/FocusUp/internal/domain"
)

// TimerRepositoryPG implements TimerRepository using PostgreSQL.
type TimerRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewTimerRepository constructs the repository.
func NewTimerRepository(pool *pgxpool.Pool) *TimerRepositoryPG {
	return &TimerRepositoryPG{pool: pool}
}

// Get fetches the user's timer session.
func (r *TimerRepositoryPG) Get(ctx context.Context, userID string) (*domain.TimerSession, error) {
	row := r.pool.QueryRow(ctx, `
SELECT user_id, focus_time, rest_time, time_left, is_focus_mode, is_running, start_time, updated_at
FROM timer_sessions
WHERE user_id = $1;
`, userID)
	return scanTimer(row)
}

// Upsert creates or replaces the user's timer session.
func (r *TimerRepositoryPG) Upsert(ctx context.Context, session *domain.TimerSession) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO timer_sessions (user_id, focus_time, rest_time, time_left, is_focus_mode, is_running, start_time, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
ON CONFLICT (user_id) DO UPDATE SET
    focus_time = EXCLUDED.focus_time,
    rest_time = EXCLUDED.rest_time,
    time_left = EXCLUDED.time_left,
    is_focus_mode = EXCLUDED.is_focus_mode,
    is_running = EXCLUDED.is_running,
    start_time = EXCLUDED.start_time,
    updated_at = now();
`, session.UserID, session.FocusTime, session.RestTime, session.TimeLeft,
		session.IsFocusMode, session.IsRunning, session.StartTime)
	return err
}

// UpdateProgress adjusts the countdown of an existing session.
func (r *TimerRepositoryPG) UpdateProgress(ctx context.Context, userID string, timeLeft int, isRunning bool, startTime *time.Time) (*domain.TimerSession, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE timer_sessions
SET time_left = $2, is_running = $3, start_time = $4, updated_at = now()
WHERE user_id = $1
RETURNING user_id, focus_time, rest_time, time_left, is_focus_mode, is_running, start_time, updated_at;
`, userID, timeLeft, isRunning, startTime)
	return scanTimer(row)
}

// Delete resets the user's timer.
func (r *TimerRepositoryPG) Delete(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM timer_sessions WHERE user_id = $1;`, userID)
	return err
}

func scanTimer(row pgx.Row) (*domain.TimerSession, error) {
	var session domain.TimerSession
	if err := row.Scan(
		&session.UserID,
		&session.FocusTime,
		&session.RestTime,
		&session.TimeLeft,
		&session.IsFocusMode,
		&session.IsRunning,
		&session.StartTime,
		&session.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}
