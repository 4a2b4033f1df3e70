package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/Prtik12/FocusUp/internal/activity"
	"github.com/Prtik12/FocusUp/internal/adapter/repo"
	"github.com/Prtik12/FocusUp/internal/domain"
	"github.com/Prtik12/FocusUp/internal/infra"
)

// The worker owns retention: activity rows beyond the log window and
// notes past their TTL are deleted once a day, shortly after midnight.
const maintenanceSchedule = "10 0 * * *"

type maintenance struct {
	activities domain.ActivityRepository
	notes      domain.NoteRepository
	logger     infra.Logger
	retention  int
	noteTTL    int
}

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: db connection failed")
	}
	defer pool.Close()

	m := &maintenance{
		activities: repo.NewActivityRepository(pool),
		notes:      repo.NewNoteRepository(pool),
		logger:     logger,
		retention:  cfg.ActivityDays,
		noteTTL:    cfg.NoteTTLDays,
	}

	// Run once at startup so a long-stopped worker catches up immediately.
	m.run(ctx)

	c := cron.New()
	if _, err := c.AddFunc(maintenanceSchedule, func() { m.run(ctx) }); err != nil {
		logger.Fatal().Err(err).Msg("worker: invalid schedule")
	}
	c.Start()
	logger.Info().Str("schedule", maintenanceSchedule).Msg("worker: started")

	<-ctx.Done()
	cronCtx := c.Stop()
	<-cronCtx.Done()
	logger.Info().Msg("worker: stopped")
}

func (m *maintenance) run(ctx context.Context) {
	m.pruneActivity(ctx)
	m.cleanupNotes(ctx)
}

func (m *maintenance) pruneActivity(ctx context.Context) {
	cutoff := activity.DayOf(time.Now()).AddDays(-(m.retention - 1))
	removed, err := m.activities.PruneBefore(ctx, cutoff.Key())
	if err != nil {
		m.logger.Error().Err(err).Msg("worker: activity prune failed")
		return
	}
	m.logger.Info().Int64("removed", removed).Str("cutoff", cutoff.Key()).Msg("worker: activity pruned")
}

func (m *maintenance) cleanupNotes(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -m.noteTTL)
	removed, err := m.notes.DeleteCreatedBefore(ctx, cutoff)
	if err != nil {
		m.logger.Error().Err(err).Msg("worker: note cleanup failed")
		return
	}
	m.logger.Info().Int64("removed", removed).Msg("worker: old notes deleted")
}
