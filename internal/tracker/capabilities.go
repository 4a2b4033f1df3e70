// Package tracker records user activity into the local per-day log and
// aggregates it for display. The recorder and aggregator talk to the host
// environment only through the small capability interfaces below, so both
// can be driven by fake clocks and in-memory stores in tests.
package tracker

import (
	"sync"
	"time"

	"github.com/Prtik12/FocusUp/internal/activity"
)

// Clock supplies the current time. Day bucketing uses the location carried
// by the returned value, so a clock pinned to a zone pins the calendar too.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock in the process-local timezone.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// KeyValueStore is the durable local store the activity log lives in.
// Implementations must treat a missing key as (nil, nil).
type KeyValueStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// Notifier replicates the local log to a remote collector. It is a one-way
// send: implementations must never block the caller and have nothing to
// return, which keeps the fire-and-forget contract visible in the type.
type Notifier interface {
	Notify(log activity.Log)
}

// MemoryStore is an in-memory KeyValueStore used by tests and by the
// aggregator-only stats command.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (m *MemoryStore) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *MemoryStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), value...)
	return nil
}
