package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Prtik12/FocusUp/internal/domain"
	"github.com/Prtik12/FocusUp/internal/middleware"
)

// In-memory repositories backing handler tests.

type fakeActivityRepo struct {
	sessions []domain.ActivitySession
}

func (f *fakeActivityRepo) UpsertSession(_ context.Context, s *domain.ActivitySession) error {
	for i := range f.sessions {
		cur := &f.sessions[i]
		if cur.UserID == s.UserID && cur.Day == s.Day && cur.SessionID == s.SessionID {
			if s.Minutes > cur.Minutes {
				cur.Minutes = s.Minutes
			}
			cur.UpdatedAt = time.Now()
			return nil
		}
	}
	stored := *s
	stored.UpdatedAt = time.Now()
	f.sessions = append(f.sessions, stored)
	return nil
}

func (f *fakeActivityRepo) ListDays(_ context.Context, userID string, limit int) ([]domain.ActivityDay, error) {
	totals := make(map[string]*domain.ActivityDay)
	for _, s := range f.sessions {
		if s.UserID != userID {
			continue
		}
		day, ok := totals[s.Day]
		if !ok {
			day = &domain.ActivityDay{Day: s.Day}
			totals[s.Day] = day
		}
		day.Minutes += s.Minutes
		if s.UpdatedAt.After(day.UpdatedAt) {
			day.UpdatedAt = s.UpdatedAt
		}
	}
	var days []domain.ActivityDay
	for _, day := range totals {
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day > days[j].Day })
	if len(days) > limit {
		days = days[:limit]
	}
	return days, nil
}

func (f *fakeActivityRepo) PruneBefore(_ context.Context, day string) (int64, error) {
	kept := f.sessions[:0]
	var removed int64
	for _, s := range f.sessions {
		if s.Day < day {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	f.sessions = kept
	return removed, nil
}

type fakeEventRepo struct {
	events map[string]domain.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[string]domain.Event)}
}

func (f *fakeEventRepo) Create(_ context.Context, e *domain.Event) error {
	e.CreatedAt = time.Now()
	f.events[e.ID] = *e
	return nil
}

func (f *fakeEventRepo) ListByUser(_ context.Context, userID string) ([]domain.Event, error) {
	var items []domain.Event
	for _, e := range f.events {
		if e.UserID == userID {
			items = append(items, e)
		}
	}
	return items, nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.events, id)
	return nil
}

type fakeNoteRepo struct {
	notes map[string]domain.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[string]domain.Note)}
}

func (f *fakeNoteRepo) Create(_ context.Context, n *domain.Note) error {
	n.CreatedAt = time.Now()
	f.notes[n.ID] = *n
	return nil
}

func (f *fakeNoteRepo) ListByUser(_ context.Context, userID string) ([]domain.Note, error) {
	var items []domain.Note
	for _, n := range f.notes {
		if n.UserID == userID {
			items = append(items, n)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (f *fakeNoteRepo) GetByID(_ context.Context, id string) (*domain.Note, error) {
	n, ok := f.notes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &n, nil
}

func (f *fakeNoteRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.notes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.notes, id)
	return nil
}

func (f *fakeNoteRepo) DeleteCreatedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var removed int64
	for id, n := range f.notes {
		if n.CreatedAt.Before(cutoff) {
			delete(f.notes, id)
			removed++
		}
	}
	return removed, nil
}

type fakeTimerRepo struct {
	sessions map[string]domain.TimerSession
}

func newFakeTimerRepo() *fakeTimerRepo {
	return &fakeTimerRepo{sessions: make(map[string]domain.TimerSession)}
}

func (f *fakeTimerRepo) Get(_ context.Context, userID string) (*domain.TimerSession, error) {
	s, ok := f.sessions[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (f *fakeTimerRepo) Upsert(_ context.Context, s *domain.TimerSession) error {
	s.UpdatedAt = time.Now()
	f.sessions[s.UserID] = *s
	return nil
}

func (f *fakeTimerRepo) UpdateProgress(_ context.Context, userID string, timeLeft int, isRunning bool, startTime *time.Time) (*domain.TimerSession, error) {
	s, ok := f.sessions[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	s.TimeLeft = timeLeft
	s.IsRunning = isRunning
	s.StartTime = startTime
	s.UpdatedAt = time.Now()
	f.sessions[userID] = s
	return &s, nil
}

func (f *fakeTimerRepo) Delete(_ context.Context, userID string) error {
	delete(f.sessions, userID)
	return nil
}

type testEnv struct {
	app        *App
	activities *fakeActivityRepo
	events     *fakeEventRepo
	notes      *fakeNoteRepo
	timers     *fakeTimerRepo
}

func newTestEnv() *testEnv {
	activities := &fakeActivityRepo{}
	eventRepo := newFakeEventRepo()
	notes := newFakeNoteRepo()
	timers := newFakeTimerRepo()
	return &testEnv{
		app:        NewApp(activities, eventRepo, notes, timers, nil, zerolog.Nop()),
		activities: activities,
		events:     eventRepo,
		notes:      notes,
		timers:     timers,
	}
}

// timeNowForTest matches the clock the summary handler buckets with.
func timeNowForTest() time.Time { return time.Now() }

// doJSON performs an authenticated request against a single handler.
func doJSON(handler http.HandlerFunc, method, target, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}
