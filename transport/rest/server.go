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

	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

type handlers struct {
	logger *slog.Logger
	game   usecase.GameUseCase
	tpl    *templates
}

// NewRouter - wires pages, JSON API, ping and the optional websocket endpoint.
func NewRouter(logger *slog.Logger, game usecase.GameUseCase, sessionTTL time.Duration, ws http.Handler) http.Handler {
	h := &handlers{
		logger: logger.With("component", "rest"),
		game:   game,
		tpl:    loadTemplates(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.logger))

	r.Get("/ping", pingHandler)

	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware(sessionTTL))

		r.Get("/", h.index)
		r.Post("/cells/{cell}", h.playCell)
		r.Post("/moves/{step}", h.goToMove)
		r.Post("/game/new", h.newGame)
		r.Post("/score/reset", h.resetScoreboard)

		r.Route("/api", func(r chi.Router) {
			r.Get("/state", h.apiState)
			r.Post("/cells/{cell}", h.apiPlayCell)
			r.Post("/moves/{step}", h.apiGoToMove)
			r.Post("/game/new", h.apiNewGame)
			r.Post("/score/reset", h.apiResetScoreboard)
		})

		if ws != nil {
			r.Get("/ws", ws.ServeHTTP)
		}
	})

	return r
}

// Start - serves handler until ctx is canceled, then shuts the server down gracefully.
func Start(ctx context.Context, conf *config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + conf.HTTPPort,
		Handler:      handler,
		ReadTimeout:  conf.HTTP.ReadTimeout,
		WriteTimeout: conf.HTTP.WriteTimeout,
		IdleTimeout:  conf.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	return nil
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Debug("request served",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
