package domain

import (
	"context"
	"time"
)

// ActivityRepository persists per-session activity contributions.
type ActivityRepository interface {
	UpsertSession(ctx context.Context, session *ActivitySession) error
	ListDays(ctx context.Context, userID string, limit int) ([]ActivityDay, error)
	PruneBefore(ctx context.Context, day string) (int64, error)
}

// EventRepository persists calendar events.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	ListByUser(ctx context.Context, userID string) ([]Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// NoteRepository persists notes.
type NoteRepository interface {
	Create(ctx context.Context, note *Note) error
	ListByUser(ctx context.Context, userID string) ([]Note, error)
	GetByID(ctx context.Context, id string) (*Note, error)
	Delete(ctx context.Context, id string) error
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// TimerRepository persists the per-user timer session.
type TimerRepository interface {
	Get(ctx context.Context, userID string) (*TimerSession, error)
	Upsert(ctx context.Context, session *TimerSession) error
	UpdateProgress(ctx context.Context, userID string, timeLeft int, isRunning bool, startTime *time.Time) (*TimerSession, error)
	Delete(ctx context.Context, userID string) error
}
