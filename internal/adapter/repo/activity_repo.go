package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Prtik12/FocusUp/internal/domain"
)

// ActivityRepositoryPG implements ActivityRepository using PostgreSQL.
type ActivityRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewActivityRepository constructs the repository.
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepositoryPG {
	return &ActivityRepositoryPG{pool: pool}
}

// UpsertSession records one session's contribution for a day. Minutes only
// ever grow within a session, so a replayed or out-of-order batch can never
// shrink a stored value.
func (r *ActivityRepositoryPG) UpsertSession(ctx context.Context, session *domain.ActivitySession) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO activity_sessions (user_id, day, session_id, minutes, country, updated_at)
VALUES ($1, $2, $3, $4, $5, now())
ON CONFLICT (user_id, day, session_id) DO UPDATE SET
    minutes = GREATEST(activity_sessions.minutes, EXCLUDED.minutes),
    country = COALESCE(NULLIF(EXCLUDED.country, ''), activity_sessions.country),
    updated_at = now();
`, session.UserID, session.Day, session.SessionID, session.Minutes, session.Country)
	return err
}

// ListDays returns per-day totals for the user, newest first, summing the
// contributions of every session that touched the day.
func (r *ActivityRepositoryPG) ListDays(ctx context.Context, userID string, limit int) ([]domain.ActivityDay, error) {
	rows, err := r.pool.Query(ctx, `
SELECT day, SUM(minutes), MAX(updated_at)
FROM activity_sessions
WHERE user_id = $1
GROUP BY day
ORDER BY day DESC
LIMIT $2;
`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []domain.ActivityDay
	for rows.Next() {
		var day domain.ActivityDay
		if err := rows.Scan(&day.Day, &day.Minutes, &day.UpdatedAt); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return days, nil
}

// PruneBefore deletes rows for days older than the given day key and
// returns how many were removed.
func (r *ActivityRepositoryPG) PruneBefore(ctx context.Context, day string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM activity_sessions WHERE day < $1;`, day)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
