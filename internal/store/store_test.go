package store

import (
	"bytes"
	"path/filepath"
	"testing"
)

type kv interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}

func exerciseStore(t *testing.T, s kv) {
	t.Helper()

	got, err := s.Get("missing")
	if err != nil {
		t.Fatalf("Get missing key: %v", err)
	}
	if got != nil {
		t.Fatalf("missing key = %q, want nil", got)
	}

	if err := s.Set("userActivities", []byte(`[{"date":"2025-03-22"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err = s.Get("userActivities")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, []byte(`[{"date":"2025-03-22"}]`)) {
		t.Fatalf("Get = %q, want stored value", got)
	}

	if err := s.Set("userActivities", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err = s.Get("userActivities")
	if err != nil {
		t.Fatalf("Get after overwrite: %v", err)
	}
	if !bytes.Equal(got, []byte(`[]`)) {
		t.Fatalf("Get after overwrite = %q, want []", got)
	}
}

func TestJSONFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "focusup.json")
	s, err := NewJSONFileStore(path)
	if err != nil {
		t.Fatalf("NewJSONFileStore: %v", err)
	}
	defer s.Close()
	exerciseStore(t, s)
}

func TestJSONFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focusup.json")
	s, err := NewJSONFileStore(path)
	if err != nil {
		t.Fatalf("NewJSONFileStore: %v", err)
	}
	if err := s.Set("k", []byte("persisted")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	s.Close()

	reopened, err := NewJSONFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.Get("k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "persisted" {
		t.Fatalf("Get = %q, want persisted", got)
	}
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focusup.db")
	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer s.Close()
	exerciseStore(t, s)
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focusup.db")
	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	if err := s.Set("k", []byte("persisted")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	s.Close()

	reopened, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.Get("k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "persisted" {
		t.Fatalf("Get = %q, want persisted", got)
	}
}
