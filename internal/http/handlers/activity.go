package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Prtik12/FocusUp/internal/activity"
	"github.com/Prtik12/FocusUp/internal/domain"
	"github.com/Prtik12/FocusUp/internal/events"
	"github.com/Prtik12/FocusUp/internal/middleware"
	"github.com/Prtik12/FocusUp/internal/observability"
)

type activitySyncRequest struct {
	SessionID  string       `json:"session_id"`
	Activities activity.Log `json:"activities"`
}

// ActivitySync ingests one batch from an agent. The agent treats sync as
// fire-and-forget, so a well-formed batch always gets {"success": true};
// only malformed input is rejected.
func (a *App) ActivitySync(w http.ResponseWriter, r *http.Request) {
	var req activitySyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordSyncBatch("rejected", 0, time.Time{})
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.SessionID == "" {
		observability.RecordSyncBatch("rejected", 0, time.Time{})
		a.error(w, http.StatusBadRequest, "bad_request", "session_id is required")
		return
	}
	if len(req.Activities) > activity.MaxLogDays {
		observability.RecordSyncBatch("rejected", 0, time.Time{})
		a.error(w, http.StatusBadRequest, "bad_request", "too many records")
		return
	}

	userID := a.currentUserID(r)
	country := middleware.CountryFromContext(r.Context())

	stored := 0
	for _, rec := range req.Activities {
		if _, err := activity.ParseDay(rec.Date); err != nil {
			continue
		}
		if rec.MinutesActive < 0 {
			continue
		}
		session := &domain.ActivitySession{
			UserID:    userID,
			Day:       rec.Date,
			SessionID: req.SessionID,
			Minutes:   rec.MinutesActive,
			Country:   country,
		}
		if err := a.Activities.UpsertSession(r.Context(), session); err != nil {
			a.Logger.Error().Err(err).Str("day", rec.Date).Msg("activity upsert failed")
			continue
		}
		stored++
	}

	now := time.Now()
	observability.RecordSyncBatch("accepted", stored, now)
	a.Publisher.PublishActivitySynced(r.Context(), events.ActivitySynced{
		UserID:    userID,
		SessionID: req.SessionID,
		Days:      stored,
		Country:   country,
		SyncedAt:  now,
	})

	a.json(w, http.StatusOK, map[string]any{"success": true})
}

// ActivityList returns the stored per-day totals for the user, newest
// first, capped at the retention window.
func (a *App) ActivityList(w http.ResponseWriter, r *http.Request) {
	days, err := a.Activities.ListDays(r.Context(), a.currentUserID(r), activity.MaxLogDays)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load activity")
		return
	}
	if days == nil {
		days = []domain.ActivityDay{}
	}
	a.json(w, http.StatusOK, map[string]any{"activities": days})
}

// ActivitySummary computes the 7-day window and streak server-side from
// the stored totals, using the same projection the agent shows locally.
func (a *App) ActivitySummary(w http.ResponseWriter, r *http.Request) {
	days, err := a.Activities.ListDays(r.Context(), a.currentUserID(r), activity.MaxLogDays)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load activity")
		return
	}

	log := make(activity.Log, 0, len(days))
	for _, day := range days {
		log = append(log, activity.Record{
			Date:          day.Day,
			MinutesActive: day.Minutes,
			LastUpdated:   day.UpdatedAt.Format(time.RFC3339),
		})
	}

	today := activity.DayOf(time.Now())
	a.json(w, http.StatusOK, map[string]any{
		"window": activity.Window(log, today),
		"streak": activity.Streak(log, today),
	})
}
