package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Prtik12/FocusUp/internal/adapter/repo"
	"github.com/Prtik12/FocusUp/internal/db"
	"github.com/Prtik12/FocusUp/internal/events"
	"github.com/Prtik12/FocusUp/internal/http/handlers"
	httpapi "github.com/Prtik12/FocusUp/internal/http/httpapi"
	"github.com/Prtik12/FocusUp/internal/infra"
	"github.com/Prtik12/FocusUp/internal/infra/geoip"
	"github.com/Prtik12/FocusUp/internal/middleware"
)

func main() {
	// .env is optional.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	if err := db.Migrate(ctx, dbpool); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate schema")
	}

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	var lookup middleware.CountryLookup
	if resolver != nil {
		lookup = resolver.CountryCode
	}

	publisher := events.NewPublisher(cfg.KafkaBrokers, logger)
	defer publisher.Close()

	app := handlers.NewApp(
		repo.NewActivityRepository(dbpool),
		repo.NewEventRepository(dbpool),
		repo.NewNoteRepository(dbpool),
		repo.NewTimerRepository(dbpool),
		publisher,
		logger,
	)

	router := httpapi.NewRouter(app, cfg, logger, lookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("version", handlers.Version).Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
