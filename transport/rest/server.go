package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

// NewRouter wires routes and returns an http.Handler.
func NewRouter(logger *slog.Logger, gameService gameService, arenaService arenaService) http.Handler {
	h := newHandlers(logger, gameService, arenaService)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/ping", pingHandler)
	r.Route("/v1/moves", func(r chi.Router) {
		r.Get("/", h.legalMoves)
		r.Post("/", h.playMove)
		r.Post("/ai", h.aiMove)
	})
	r.Route("/v1/arena/{id}", func(r chi.Router) {
		r.Get("/", h.arenaResult)
		r.Delete("/", h.deleteArenaResult)
	})

	return r
}

// Start serves handler on port until ctx is cancelled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		shutdownErr <- srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	if err := <-shutdownErr; err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
