package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/Prtik12/FocusUp/internal/infra"
	"github.com/Prtik12/FocusUp/internal/store"
	"github.com/Prtik12/FocusUp/internal/syncer"
	"github.com/Prtik12/FocusUp/internal/tracker"
	"github.com/Prtik12/FocusUp/internal/tui"
)

var CLI struct {
	Version kong.VersionFlag

	DataDir string `help:"Directory for local state and logs." type:"path" default:"~/.local/share/focusup"`
	Store   string `help:"Local store backend." enum:"json,sqlite" default:"json"`
	Server  string `help:"FocusUp server base URL. Empty disables sync." env:"FOCUSUP_SERVER"`
	Token   string `help:"Bearer token for sync." env:"FOCUSUP_TOKEN"`
	Debug   bool   `help:"Enable debug logging."`

	Run   RunCmd   `cmd:"" help:"Track focus time with the live dashboard." default:"1"`
	Stats StatsCmd `cmd:"" help:"Print the 7-day window and streak, without recording."`
}

// RunCmd launches the dashboard and records activity while it is open.
type RunCmd struct {
	IdleThreshold time.Duration `help:"Silence before the session goes idle." default:"60s"`
	FlushInterval time.Duration `help:"Cadence of the periodic flush." default:"30s"`
}

// StatsCmd prints a one-shot snapshot.
type StatsCmd struct{}

type appContext struct {
	store  tracker.KeyValueStore
	logger zerolog.Logger
	closer func() error
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("focusup"),
		kong.Description("Focus time tracker with per-day streaks"),
		kong.UsageOnError(),
		kong.Vars{"version": "v1.0.0"},
	)

	logger := infra.NewFileLogger(filepath.Join(CLI.DataDir, "agent.log"), CLI.Debug)

	kv, closer, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := &appContext{store: kv, logger: logger, closer: closer}
	err = ctx.Run(appCtx)
	if cerr := appCtx.closer(); cerr != nil {
		logger.Warn().Err(cerr).Msg("store close failed")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openStore() (tracker.KeyValueStore, func() error, error) {
	switch CLI.Store {
	case "sqlite":
		s, err := store.NewSQLiteStore(filepath.Join(CLI.DataDir, "focusup.db"))
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		s, err := store.NewJSONFileStore(filepath.Join(CLI.DataDir, "focusup.json"))
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}
}

func (c *RunCmd) Run(app *appContext) error {
	var notifier tracker.Notifier
	if CLI.Server != "" {
		notifier = syncer.New(syncer.Config{
			BaseURL: CLI.Server,
			Token:   CLI.Token,
			Logger:  app.logger,
		})
	}

	recorder := tracker.NewRecorder(tracker.RecorderConfig{
		Store:         app.store,
		Notifier:      notifier,
		Logger:        app.logger,
		IdleThreshold: c.IdleThreshold,
		FlushInterval: c.FlushInterval,
	})
	aggregator := tracker.NewAggregator(tracker.AggregatorConfig{
		Store:  app.store,
		Logger: app.logger,
	})

	recorder.Start()
	aggregator.Start()

	program := tea.NewProgram(
		tui.NewModel(recorder, aggregator),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := program.Run(); err != nil {
		// The model stops both on quit; stopping twice is safe.
		recorder.Stop()
		aggregator.Stop()
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}

func (c *StatsCmd) Run(app *appContext) error {
	aggregator := tracker.NewAggregator(tracker.AggregatorConfig{
		Store:  app.store,
		Logger: app.logger,
	})
	aggregator.Load()
	snap := aggregator.Snapshot()

	for _, day := range snap.Window {
		fmt.Printf("%s  %6.1f min\n", day.FormattedDate, day.Minutes)
	}
	fmt.Printf("streak: %d day(s)\n", snap.Streak)
	return nil
}
