package tracker

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Prtik12/FocusUp/internal/activity"
)

func seedStore(t *testing.T, store KeyValueStore, log activity.Log) {
	t.Helper()
	data, err := log.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := store.Set(activity.LogKey, data); err != nil {
		t.Fatalf("Set: %v", err)
	}
}

func TestAggregatorLoadsWindowAndStreak(t *testing.T) {
	clock := newFakeClock(time.Date(2025, time.March, 22, 12, 0, 0, 0, time.UTC))
	store := NewMemoryStore()
	seedStore(t, store, activity.Log{
		{Date: "2025-03-22", MinutesActive: 5.0, LastUpdated: "x"},
		{Date: "2025-03-21", MinutesActive: 0, LastUpdated: "x"},
		{Date: "2025-03-20", MinutesActive: 12.5, LastUpdated: "x"},
	})

	agg := NewAggregator(AggregatorConfig{Store: store, Clock: clock, Logger: zerolog.Nop()})

	if snap := agg.Snapshot(); !snap.Loading {
		t.Fatal("snapshot should report loading before the first Load")
	}

	agg.Load()
	snap := agg.Snapshot()
	if snap.Loading {
		t.Fatal("snapshot still loading after Load")
	}
	if snap.Streak != 1 {
		t.Fatalf("streak = %d, want 1", snap.Streak)
	}
	if len(snap.Window) != activity.WindowDays {
		t.Fatalf("window length = %d, want %d", len(snap.Window), activity.WindowDays)
	}
	last := snap.Window[len(snap.Window)-1]
	if last.Date != "2025-03-22" || last.Minutes != 5.0 {
		t.Fatalf("window tail = %+v, want today with 5.0 minutes", last)
	}
}

func TestAggregatorEmptyStoreYieldsZeroes(t *testing.T) {
	clock := newFakeClock(time.Date(2025, time.March, 22, 12, 0, 0, 0, time.UTC))
	agg := NewAggregator(AggregatorConfig{Store: NewMemoryStore(), Clock: clock, Logger: zerolog.Nop()})

	agg.Load()
	snap := agg.Snapshot()
	if snap.Streak != 0 {
		t.Fatalf("streak = %d, want 0", snap.Streak)
	}
	for _, entry := range snap.Window {
		if entry.Minutes != 0 {
			t.Fatalf("entry %s has %v minutes, want 0", entry.Date, entry.Minutes)
		}
	}
}

func TestAggregatorCorruptStoreYieldsZeroes(t *testing.T) {
	clock := newFakeClock(time.Date(2025, time.March, 22, 12, 0, 0, 0, time.UTC))
	store := NewMemoryStore()
	if err := store.Set(activity.LogKey, []byte("][")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	agg := NewAggregator(AggregatorConfig{Store: store, Clock: clock, Logger: zerolog.Nop()})

	agg.Load()
	snap := agg.Snapshot()
	if snap.Streak != 0 || len(snap.Window) != activity.WindowDays {
		t.Fatalf("snapshot = %+v, want zeroed 7-day window", snap)
	}
}

func TestAggregatorDayRolloverForcesReload(t *testing.T) {
	clock := newFakeClock(time.Date(2025, time.March, 22, 23, 59, 0, 0, time.UTC))
	store := NewMemoryStore()
	seedStore(t, store, activity.Log{
		{Date: "2025-03-22", MinutesActive: 5.0, LastUpdated: "x"},
	})

	agg := NewAggregator(AggregatorConfig{Store: store, Clock: clock, Logger: zerolog.Nop()})
	agg.Load()

	if agg.CheckDayRollover() {
		t.Fatal("rollover reported with no day change")
	}

	clock.Advance(2 * time.Minute) // past local midnight

	if !agg.CheckDayRollover() {
		t.Fatal("rollover not detected after the day changed")
	}
	snap := agg.Snapshot()
	tail := snap.Window[len(snap.Window)-1]
	if tail.Date != "2025-03-23" {
		t.Fatalf("window tail = %s, want 2025-03-23", tail.Date)
	}
	// Yesterday had activity but today does not, so the streak is zero.
	if snap.Streak != 0 {
		t.Fatalf("streak = %d, want 0 on the new day", snap.Streak)
	}
}
