package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Prtik12/FocusUp/internal/domain"
)

// NoteRepositoryPG implements NoteRepository using PostgreSQL.
type NoteRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewNoteRepository constructs the repository.
func NewNoteRepository(pool *pgxpool.Pool) *NoteRepositoryPG {
	return &NoteRepositoryPG{pool: pool}
}

// Create inserts a new note.
func (r *NoteRepositoryPG) Create(ctx context.Context, note *domain.Note) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO notes (id, user_id, title, content)
VALUES ($1, $2, $3, $4);
`, note.ID, note.UserID, note.Title, note.Content)
	return err
}

// ListByUser returns the user's notes, newest first.
func (r *NoteRepositoryPG) ListByUser(ctx context.Context, userID string) ([]domain.Note, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, title, content, created_at
FROM notes
WHERE user_id = $1
ORDER BY created_at DESC;
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Note
	for rows.Next() {
		var note domain.Note
		if err := rows.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, note)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID fetches one note.
func (r *NoteRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, user_id, title, content, created_at
FROM notes
WHERE id = $1;
`, id)

	var note domain.Note
	if err := row.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

// Delete removes a note by id.
func (r *NoteRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteCreatedBefore removes notes older than the cutoff and returns how
// many were removed.
func (r *NoteRepositoryPG) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE created_at < $1;`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
