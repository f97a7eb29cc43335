package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/internal/repository"
	"github.com/rocketscienceinc/tictactoe-board/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-board/transport/rest"
	"github.com/rocketscienceinc/tictactoe-board/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sessionRepo, closeStorage, err := newSessionRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close session storage", "error", err)
		}
	}()

	gameUseCase := usecase.NewGameManager(logger, sessionRepo)
	wsServer := websocket.New(logger, gameUseCase)
	router := rest.NewRouter(logger, gameUseCase, conf.Storage.SessionTTL, wsServer)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage.Driver)
	if err = rest.Start(ctx, conf, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// newSessionRepository - picks the session store named by the config.
func newSessionRepository(ctx context.Context, conf *config.Config) (repository.SessionRepository, func() error, error) {
	if conf.Storage.Driver == config.StorageMemory {
		return repository.NewMemorySessionRepository(conf.Storage.SessionTTL), func() error { return nil }, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewSessionRepository(redisStorage.Connection, conf.Storage.SessionTTL), redisStorage.Close, nil
}
