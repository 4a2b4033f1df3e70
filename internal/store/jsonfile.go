// Package store provides the durable key-value backends the tracker
// persists its activity log into. Two implementations exist: a single
// JSON file for zero-setup installs and a SQLite database for users who
// want the log queryable with standard tools. Both satisfy
// tracker.KeyValueStore and treat a missing key as (nil, nil).
package store

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// JSONFileStore keeps all keys in one JSON object on disk. Every Set
// rewrites the whole file, which is fine at the sizes the tracker
// produces (a capped 14-entry log).
type JSONFileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewJSONFileStore opens or creates the store at path. The parent
// directory is created as needed.
func NewJSONFileStore(path string) (*JSONFileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	s := &JSONFileStore{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read store: %w", err)
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("parse store: %w", err)
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	return s, nil
}

func (s *JSONFileStore) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	encoded, ok := s.values[key]
	if !ok {
		return nil, nil
	}
	value, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode value for %q: %w", key, err)
	}
	return value, nil
}

func (s *JSONFileStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = base64.StdEncoding.EncodeToString(value)
	return s.save()
}

// save rewrites the backing file. Callers must hold s.mu.
func (s *JSONFileStore) save() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}

func (s *JSONFileStore) Close() error { return nil }

// Path returns the location of the backing file.
func (s *JSONFileStore) Path() string { return s.path }
