package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Prtik12/FocusUp/internal/domain"
)

type eventCreateRequest struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}

type eventDeleteRequest struct {
	ID string `json:"id"`
}

// EventsList returns the user's calendar events.
func (a *App) EventsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Events.ListByUser(r.Context(), a.currentUserID(r))
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load events")
		return
	}
	if items == nil {
		items = []domain.Event{}
	}
	a.json(w, http.StatusOK, map[string]any{"events": items})
}

// EventsCreate adds a calendar event.
func (a *App) EventsCreate(w http.ResponseWriter, r *http.Request) {
	var req eventCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Title == "" || req.Date == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "title and date are required")
		return
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		if date, err = time.Parse("2006-01-02", req.Date); err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "date must be RFC3339 or YYYY-MM-DD")
			return
		}
	}

	event := &domain.Event{
		ID:     uuid.NewString(),
		UserID: a.currentUserID(r),
		Title:  req.Title,
		Date:   date,
	}
	if err := a.Events.Create(r.Context(), event); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to create event")
		return
	}
	a.json(w, http.StatusCreated, event)
}

// EventsDelete removes an event owned by the user.
func (a *App) EventsDelete(w http.ResponseWriter, r *http.Request) {
	var req eventDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "event id is required")
		return
	}

	event, err := a.Events.GetByID(r.Context(), req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "event not found")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to load event")
		return
	}
	if event.UserID != a.currentUserID(r) {
		a.error(w, http.StatusForbidden, "forbidden", "event belongs to another user")
		return
	}

	if err := a.Events.Delete(r.Context(), req.ID); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete event")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true})
}
