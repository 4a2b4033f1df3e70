package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Prtik12/FocusUp/internal/http/handlers"
	"github.com/Prtik12/FocusUp/internal/infra"
	"github.com/Prtik12/FocusUp/internal/middleware"
)

// NewRouter assembles the API surface. Everything under /v1 except healthz
// requires a bearer token; the sync endpoint is additionally rate limited
// per client IP.
func NewRouter(app *handlers.App, cfg *infra.Config, logger infra.Logger, lookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Logger(logger),
		middleware.CORS(cfg.AllowedOrigins),
	)

	r.Get("/v1/healthz", app.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(cfg.JWTSecret))

		r.Route("/v1/activity", func(r chi.Router) {
			r.With(
				middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
				middleware.Geo(lookup),
			).Post("/", app.ActivitySync)
			r.Get("/", app.ActivityList)
			r.Get("/summary", app.ActivitySummary)
		})

		r.Route("/v1/events", func(r chi.Router) {
			r.Get("/", app.EventsList)
			r.Post("/", app.EventsCreate)
			r.Delete("/", app.EventsDelete)
		})

		r.Route("/v1/notes", func(r chi.Router) {
			r.Get("/", app.NotesList)
			r.Post("/", app.NotesCreate)
			r.Delete("/", app.NotesDelete)
		})

		r.Route("/v1/timer", func(r chi.Router) {
			r.Get("/", app.TimerGet)
			r.Post("/", app.TimerUpsert)
			r.Patch("/", app.TimerProgress)
			r.Delete("/", app.TimerReset)
		})
	})

	return r
}
