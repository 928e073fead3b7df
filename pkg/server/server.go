package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	handlers "github.com/de-tools/scoop-report/pkg/handlers/report"
	scoopmiddleware "github.com/de-tools/scoop-report/pkg/server/middleware"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Report *handlers.Handler
	// PhotoDir is served statically under PhotoURLPrefix so the dashboard
	// can reference improvement photos.
	PhotoDir       string
	PhotoURLPrefix string
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	deps := config.Dependencies
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 10 * time.Second
	}

	router := chi.NewRouter()
	router.Use(scoopmiddleware.Logger(&logger))
	router.Use(chimiddleware.Recoverer)

	router.Get("/", deps.Report.Dashboard)
	router.Get("/report/pdf", deps.Report.DownloadPDF)
	router.Get("/healthz", deps.Report.Health)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/report", deps.Report.GetReport)
	})

	if deps.PhotoDir != "" {
		fs := http.StripPrefix(deps.PhotoURLPrefix, http.FileServer(http.Dir(deps.PhotoDir)))
		router.Get(deps.PhotoURLPrefix+"/*", fs.ServeHTTP)
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: config.ShutdownTimeout,
	}
}

// Router exposes the configured mux, mainly for tests.
func (w *WebAPI) Router() http.Handler {
	return w.router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
