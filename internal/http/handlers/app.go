package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Prtik12/FocusUp/internal/domain"
	"github.com/Prtik12/FocusUp/internal/events"
	"github.com/Prtik12/FocusUp/internal/middleware"
)

// App is the handler container. Repositories are injected as interfaces
// so tests can run against in-memory fakes.
type App struct {
	Activities domain.ActivityRepository
	Events     domain.EventRepository
	Notes      domain.NoteRepository
	Timers     domain.TimerRepository
	Publisher  *events.Publisher
	Logger     zerolog.Logger
}

// NewApp wires the handler container.
func NewApp(
	activities domain.ActivityRepository,
	eventRepo domain.EventRepository,
	notes domain.NoteRepository,
	timers domain.TimerRepository,
	publisher *events.Publisher,
	logger zerolog.Logger,
) *App {
	return &App{
		Activities: activities,
		Events:     eventRepo,
		Notes:      notes,
		Timers:     timers,
		Publisher:  publisher,
		Logger:     logger,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, kind, message string) {
	a.json(w, code, map[string]string{"error": kind, "message": message})
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}
