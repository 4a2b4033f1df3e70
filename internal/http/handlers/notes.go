package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Prtik12/FocusUp/internal/domain"
)

type noteCreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type noteDeleteRequest struct {
	ID string `json:"noteId"`
}

// NotesList returns the user's notes, newest first.
func (a *App) NotesList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Notes.ListByUser(r.Context(), a.currentUserID(r))
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load notes")
		return
	}
	if items == nil {
		items = []domain.Note{}
	}
	a.json(w, http.StatusOK, map[string]any{"notes": items})
}

// NotesCreate adds a note.
func (a *App) NotesCreate(w http.ResponseWriter, r *http.Request) {
	var req noteCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Title == "" || req.Content == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "title and content are required")
		return
	}

	note := &domain.Note{
		ID:      uuid.NewString(),
		UserID:  a.currentUserID(r),
		Title:   req.Title,
		Content: req.Content,
	}
	if err := a.Notes.Create(r.Context(), note); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to create note")
		return
	}
	a.json(w, http.StatusCreated, note)
}

// NotesDelete removes a note owned by the user.
func (a *App) NotesDelete(w http.ResponseWriter, r *http.Request) {
	var req noteDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "note id is required")
		return
	}

	note, err := a.Notes.GetByID(r.Context(), req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "note not found")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to load note")
		return
	}
	if note.UserID != a.currentUserID(r) {
		a.error(w, http.StatusForbidden, "forbidden", "note belongs to another user")
		return
	}

	if err := a.Notes.Delete(r.Context(), req.ID); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete note")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true})
}
