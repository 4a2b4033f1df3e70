package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Prtik12/FocusUp/internal/domain"
)

type timerUpsertRequest struct {
	FocusTime   int  `json:"focusTime"`
	RestTime    int  `json:"restTime"`
	IsFocusMode bool `json:"isFocusMode"`
	IsRunning   bool `json:"isRunning"`
}

type timerProgressRequest struct {
	TimeLeft  int  `json:"timeLeft"`
	IsRunning bool `json:"isRunning"`
}

// TimerGet returns the user's timer session, or null when none exists.
func (a *App) TimerGet(w http.ResponseWriter, r *http.Request) {
	session, err := a.Timers.Get(r.Context(), a.currentUserID(r))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.json(w, http.StatusOK, nil)
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to load timer")
		return
	}
	a.json(w, http.StatusOK, session)
}

// TimerUpsert starts or reconfigures the timer. The countdown restarts
// from the configured focus time.
func (a *App) TimerUpsert(w http.ResponseWriter, r *http.Request) {
	var req timerUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.FocusTime <= 0 || req.RestTime < 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "focusTime must be positive")
		return
	}

	session := &domain.TimerSession{
		UserID:      a.currentUserID(r),
		FocusTime:   req.FocusTime,
		RestTime:    req.RestTime,
		TimeLeft:    req.FocusTime,
		IsFocusMode: req.IsFocusMode,
		IsRunning:   req.IsRunning,
		StartTime:   startTimeFor(req.IsRunning),
	}
	if err := a.Timers.Upsert(r.Context(), session); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to save timer")
		return
	}
	a.json(w, http.StatusOK, session)
}

// TimerProgress updates the countdown of an existing session.
func (a *App) TimerProgress(w http.ResponseWriter, r *http.Request) {
	var req timerProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	session, err := a.Timers.UpdateProgress(
		r.Context(), a.currentUserID(r), req.TimeLeft, req.IsRunning, startTimeFor(req.IsRunning))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "no timer session")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to update timer")
		return
	}
	a.json(w, http.StatusOK, session)
}

// TimerReset deletes the user's timer session.
func (a *App) TimerReset(w http.ResponseWriter, r *http.Request) {
	if err := a.Timers.Delete(r.Context(), a.currentUserID(r)); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to reset timer")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"message": "timer reset"})
}

func startTimeFor(running bool) *time.Time {
	if !running {
		return nil
	}
	now := time.Now()
	return &now
}
