package tracker

import (
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Prtik12/FocusUp/internal/activity"
)

const (
	// DefaultIdleThreshold is how long the recorder waits without an
	// interaction before it stops crediting time.
	DefaultIdleThreshold = 60 * time.Second
	// DefaultFlushInterval is the cadence of the periodic safety flush
	// while the session is visible.
	DefaultFlushInterval = 30 * time.Second

	tickInterval = time.Second
)

// RecorderConfig wires a Recorder to its host environment.
type RecorderConfig struct {
	Store         KeyValueStore
	Notifier      Notifier // optional; nil disables remote sync
	Clock         Clock    // optional; defaults to SystemClock
	Logger        zerolog.Logger
	IdleThreshold time.Duration // optional; defaults to DefaultIdleThreshold
	FlushInterval time.Duration // optional; defaults to DefaultFlushInterval
}

// Recorder turns interaction signals into the durable per-day activity log.
// It is a two-state machine (active/idle): time is credited from the start
// of the current activity window up to at most the last interaction plus the
// idle threshold. All state is owned by the instance; Start and Stop bound
// its lifecycle.
type Recorder struct {
	store         KeyValueStore
	notifier      Notifier
	clock         Clock
	logger        zerolog.Logger
	idleThreshold time.Duration
	flushInterval time.Duration

	mu          sync.Mutex
	day         activity.Day
	accumulated time.Duration
	windowStart time.Time
	lastEvent   time.Time
	lastFlush   time.Time
	active      bool
	visible     bool
	started     bool

	done chan struct{}
	wg   sync.WaitGroup
}

// NewRecorder builds a Recorder. The store is required.
func NewRecorder(cfg RecorderConfig) *Recorder {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.IdleThreshold <= 0 {
		cfg.IdleThreshold = DefaultIdleThreshold
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = DefaultFlushInterval
	}
	return &Recorder{
		store:         cfg.Store,
		notifier:      cfg.Notifier,
		clock:         cfg.Clock,
		logger:        cfg.Logger,
		idleThreshold: cfg.IdleThreshold,
		flushInterval: cfg.FlushInterval,
	}
}

// Start seeds the accumulator from today's stored record, opens the first
// activity window, and launches the background tick loop that drives idle
// detection and the periodic flush.
func (r *Recorder) Start() {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return
	}
	now := r.clock.Now()
	r.day = activity.DayOf(now)
	r.accumulated = r.seedFromStore(r.day)
	r.windowStart = now
	r.lastEvent = now
	r.lastFlush = now
	r.active = true
	r.visible = true
	r.started = true
	r.done = make(chan struct{})
	r.mu.Unlock()

	r.wg.Add(1)
	go r.run()

	r.logger.Debug().
		Str("day", r.day.Key()).
		Dur("seeded", r.accumulated).
		Msg("recorder started")
}

// Stop performs one final flush and tears the tick loop down. Safe to call
// once after Start.
func (r *Recorder) Stop() {
	r.mu.Lock()
	if !r.started {
		r.mu.Unlock()
		return
	}
	r.started = false
	r.flushLocked(r.clock.Now())
	done := r.done
	r.mu.Unlock()

	close(done)
	r.wg.Wait()
}

// RecordInteraction marks a qualifying user interaction. When idle, it
// reopens the activity window at the current instant without crediting the
// idle gap. It never fails.
func (r *Recorder) RecordInteraction() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.clock.Now()
	if !r.active {
		r.active = true
		r.windowStart = now
	}
	r.lastEvent = now
}

// SetVisible reports a visibility change of the hosting surface. Hiding
// flushes pending time and suspends crediting; becoming visible again opens
// a fresh activity window so the hidden period is never counted.
func (r *Recorder) SetVisible(visible bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if visible == r.visible {
		return
	}
	now := r.clock.Now()
	if !visible {
		r.flushLocked(now)
		r.visible = false
		r.active = false
		return
	}
	r.visible = true
	r.active = true
	r.windowStart = now
	r.lastEvent = now
}

// Flush commits the elapsed active time to the store immediately.
func (r *Recorder) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushLocked(r.clock.Now())
}

// TodayMinutes returns the minutes accumulated for the current day,
// including time flushed by earlier sessions, rounded to one decimal.
func (r *Recorder) TodayMinutes() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := r.accumulated
	if r.active {
		now := r.clock.Now()
		if end := r.creditEnd(now); end.After(r.windowStart) {
			total += end.Sub(r.windowStart)
		}
	}
	return roundMinutes(total)
}

func (r *Recorder) run() {
	defer r.wg.Done()
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			r.tick()
		}
	}
}

// tick drives the two timer-like behaviors: the idle transition and the
// periodic flush. Running them off one ticker keeps all state transitions
// serialized under the mutex.
func (r *Recorder) tick() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.started {
		return
	}
	now := r.clock.Now()
	if r.active && now.Sub(r.lastEvent) >= r.idleThreshold {
		r.flushLocked(now)
		r.active = false
		r.logger.Debug().Msg("recorder idle")
		return
	}
	if r.visible && now.Sub(r.lastFlush) >= r.flushInterval {
		r.flushLocked(now)
	}
}

// creditEnd caps the crediting horizon at the last interaction plus the
// idle threshold, so silence past the threshold is never counted.
func (r *Recorder) creditEnd(now time.Time) time.Time {
	cutoff := r.lastEvent.Add(r.idleThreshold)
	if now.After(cutoff) {
		return cutoff
	}
	return now
}

// flushLocked commits whole elapsed seconds since the window start and
// resets the window. A flush with nothing elapsed leaves the log untouched.
// Callers must hold r.mu.
func (r *Recorder) flushLocked(now time.Time) {
	r.lastFlush = now
	if !r.active {
		return
	}

	end := r.creditEnd(now)
	elapsed := end.Sub(r.windowStart) / time.Second * time.Second
	r.windowStart = now
	if elapsed <= 0 {
		return
	}

	day := activity.DayOf(now)
	if !day.Equal(r.day) {
		// Calendar rolled over: the new day starts a fresh accumulation.
		r.day = day
		r.accumulated = r.seedFromStore(day)
	}
	r.accumulated += elapsed

	r.persistLocked(day, roundMinutes(r.accumulated), now)
}

// persistLocked upserts today's record. The read-modify-write happens
// entirely under the mutex with no suspension point in between, so
// interleaved callbacks cannot lose updates.
func (r *Recorder) persistLocked(day activity.Day, minutes float64, now time.Time) {
	data, err := r.store.Get(activity.LogKey)
	if err != nil {
		r.logger.Warn().Err(err).Msg("activity log read failed, starting empty")
		data = nil
	}
	log := activity.DecodeLog(data).Upsert(day, minutes, now)

	encoded, err := log.Encode()
	if err != nil {
		r.logger.Error().Err(err).Msg("activity log encode failed")
		return
	}
	if err := r.store.Set(activity.LogKey, encoded); err != nil {
		r.logger.Warn().Err(err).Msg("activity log write failed")
		return
	}

	r.logger.Debug().
		Str("day", day.Key()).
		Float64("minutes", minutes).
		Msg("activity flushed")

	if r.notifier != nil {
		r.notifier.Notify(log)
	}
}

func (r *Recorder) seedFromStore(day activity.Day) time.Duration {
	data, err := r.store.Get(activity.LogKey)
	if err != nil {
		r.logger.Warn().Err(err).Msg("activity log read failed, seeding empty")
		return 0
	}
	if rec, ok := activity.DecodeLog(data).Find(day); ok {
		return time.Duration(rec.MinutesActive * float64(time.Minute))
	}
	return 0
}

func roundMinutes(d time.Duration) float64 {
	return math.Round(d.Minutes()*10) / 10
}
