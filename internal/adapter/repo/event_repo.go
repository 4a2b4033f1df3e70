package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Prtik12/FocusUp/internal/domain"
)

// EventRepositoryPG implements EventRepository using PostgreSQL.
type EventRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewEventRepository constructs the repository.
func NewEventRepository(pool *pgxpool.Pool) *EventRepositoryPG {
	return &EventRepositoryPG{pool: pool}
}

// Create inserts a new event.
func (r *EventRepositoryPG) Create(ctx context.Context, event *domain.Event) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO events (id, user_id, title, date)
VALUES ($1, $2, $3, $4);
`, event.ID, event.UserID, event.Title, event.Date)
	return err
}

// ListByUser returns the user's events ordered by date.
func (r *EventRepositoryPG) ListByUser(ctx context.Context, userID string) ([]domain.Event, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, title, date, created_at
FROM events
WHERE user_id = $1
ORDER BY date;
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Event
	for rows.Next() {
		var event domain.Event
		if err := rows.Scan(&event.ID, &event.UserID, &event.Title, &event.Date, &event.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID fetches one event.
func (r *EventRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, user_id, title, date, created_at
FROM events
WHERE id = $1;
`, id)

	var event domain.Event
	if err := row.Scan(&event.ID, &event.UserID, &event.Title, &event.Date, &event.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

// Delete removes an event by id.
func (r *EventRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
