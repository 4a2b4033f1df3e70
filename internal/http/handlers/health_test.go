package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestHealthReportsStatusAndVersion(t *testing.T) {
	env := newTestEnv()

	rec := doJSON(env.app.Health, http.MethodGet, "/v1/healthz", "user-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("status = %q, want ok", body["status"])
	}
	if body["version"] != Version {
		t.Fatalf("version = %q, want %q", body["version"], Version)
	}
}
