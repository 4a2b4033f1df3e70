package tracker

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Prtik12/FocusUp/internal/activity"
)

const rolloverPollInterval = time.Minute

// Snapshot is the aggregator's output: the trailing 7-day window, the
// current streak, and a loading flag that is true only before the first
// read completes. All three are recomputed together on every load.
type Snapshot struct {
	Window  []activity.DaySummary
	Streak  int
	Loading bool
}

// AggregatorConfig wires an Aggregator to its host environment.
type AggregatorConfig struct {
	Store  KeyValueStore
	Clock  Clock // optional; defaults to SystemClock
	Logger zerolog.Logger
}

// Aggregator reads the local activity log and derives the display window
// and streak. It refreshes itself at local midnight via a re-arming
// one-shot timer, with a minute-granularity poll as a safety net against
// missed wakeups (device sleep).
type Aggregator struct {
	store  KeyValueStore
	clock  Clock
	logger zerolog.Logger

	mu       sync.Mutex
	snapshot Snapshot
	loadedAt activity.Day

	done chan struct{}
	wg   sync.WaitGroup
}

// NewAggregator builds an Aggregator. The store is required.
func NewAggregator(cfg AggregatorConfig) *Aggregator {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	return &Aggregator{
		store:    cfg.Store,
		clock:    cfg.Clock,
		logger:   cfg.Logger,
		snapshot: Snapshot{Loading: true},
	}
}

// Start performs the initial load and arms the refresh timers.
func (a *Aggregator) Start() {
	a.Load()
	a.done = make(chan struct{})
	a.wg.Add(1)
	go a.run()
}

// Stop cancels the refresh timers.
func (a *Aggregator) Stop() {
	if a.done == nil {
		return
	}
	close(a.done)
	a.wg.Wait()
	a.done = nil
}

// Load reads the log and atomically replaces the snapshot. A missing or
// corrupt log yields an all-zero window and a zero streak, never an error.
func (a *Aggregator) Load() {
	now := a.clock.Now()
	today := activity.DayOf(now)

	data, err := a.store.Get(activity.LogKey)
	if err != nil {
		a.logger.Warn().Err(err).Msg("activity log read failed, showing empty window")
		data = nil
	}
	log := activity.DecodeLog(data)

	snap := Snapshot{
		Window: activity.Window(log, today),
		Streak: activity.Streak(log, today),
	}

	a.mu.Lock()
	a.snapshot = snap
	a.loadedAt = today
	a.mu.Unlock()
}

// Snapshot returns the last loaded state.
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	snap := a.snapshot
	window := make([]activity.DaySummary, len(snap.Window))
	copy(window, snap.Window)
	snap.Window = window
	return snap
}

// CheckDayRollover reloads when the local calendar day has changed since
// the last load. Returns true when a reload happened.
func (a *Aggregator) CheckDayRollover() bool {
	today := activity.DayOf(a.clock.Now())
	a.mu.Lock()
	stale := !a.loadedAt.Equal(today)
	a.mu.Unlock()
	if stale {
		a.logger.Debug().Str("day", today.Key()).Msg("day rollover detected")
		a.Load()
	}
	return stale
}

func (a *Aggregator) run() {
	defer a.wg.Done()
	poll := time.NewTicker(rolloverPollInterval)
	defer poll.Stop()
	for {
		midnight := time.NewTimer(a.untilNextMidnight())
		select {
		case <-a.done:
			midnight.Stop()
			return
		case <-midnight.C:
			a.Load()
		case <-poll.C:
			midnight.Stop()
			a.CheckDayRollover()
		}
	}
}

// untilNextMidnight computes the delay to the next local midnight. The
// timer is re-armed every loop iteration, so a day boundary always gets a
// dedicated wakeup in addition to the poll.
func (a *Aggregator) untilNextMidnight() time.Duration {
	now := a.clock.Now()
	next := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	d := next.Sub(now)
	if d <= 0 {
		d = time.Second
	}
	return d
}
