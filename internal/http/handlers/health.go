package handlers

import (
	"net/http"
)

// Version is reported by the health endpoint and stamped into logs by main.
const Version = "v1.0.0"

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok", "version": Version})
}
