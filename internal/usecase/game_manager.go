package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager - keeps one engine per session in the session repository. Operations on the same
// session run one at a time, each as a load, mutate and save cycle.
type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	locks       *sessionLocks
}

var _ GameUseCase = (*GameManager)(nil)

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo) *GameManager {
	return &GameManager{
		logger:      logger.With("component", "game_manager"),
		sessionRepo: sessionRepo,
		locks:       newSessionLocks(),
	}
}

func (that *GameManager) State(ctx context.Context, sessionID string) (entity.GameState, error) {
	unlock := that.locks.lock(sessionID)
	defer unlock()

	engine, err := that.loadEngine(ctx, sessionID)
	if err != nil {
		return entity.GameState{}, err
	}

	return engine.State(), nil
}

// PlayCell - an accepted move always lands on the newest board, so a terminal state after it
// means this move ended the game.
func (that *GameManager) PlayCell(ctx context.Context, sessionID string, cell int) (entity.GameState, error) {
	state, err := that.mutate(ctx, sessionID, "PlayCell", func(engine *tictactoe.Engine) error {
		return engine.PlayCell(cell)
	})
	if err == nil && (state.Result.HasWinner() || state.IsDraw) {
		that.logger.Info("game finished", "session", sessionID, "status", state.Status, "score", state.Score)
	}

	return state, err
}

func (that *GameManager) GoToMove(ctx context.Context, sessionID string, step int) (entity.GameState, error) {
	return that.mutate(ctx, sessionID, "GoToMove", func(engine *tictactoe.Engine) error {
		return engine.GoToMove(step)
	})
}

func (that *GameManager) NewGame(ctx context.Context, sessionID string) (entity.GameState, error) {
	return that.mutate(ctx, sessionID, "NewGame", func(engine *tictactoe.Engine) error {
		engine.NewGame()
		return nil
	})
}

func (that *GameManager) ResetScoreboard(ctx context.Context, sessionID string) (entity.GameState, error) {
	return that.mutate(ctx, sessionID, "ResetScoreboard", func(engine *tictactoe.Engine) error {
		engine.ResetScoreboard()
		return nil
	})
}

// mutate - applies op to the session engine and saves it. A rejected op is not saved and the
// unchanged state is returned together with the rejection.
func (that *GameManager) mutate(
	ctx context.Context, sessionID, method string, op func(engine *tictactoe.Engine) error,
) (entity.GameState, error) {
	log := that.logger.With("method", method, "session", sessionID)

	unlock := that.locks.lock(sessionID)
	defer unlock()

	engine, err := that.loadEngine(ctx, sessionID)
	if err != nil {
		return entity.GameState{}, err
	}

	if err = op(engine); err != nil {
		log.Debug("operation rejected", "error", err)
		return engine.State(), err
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, engine.Snapshot(sessionID)); err != nil {
		log.Error("failed to save session", "error", err)
		return entity.GameState{}, fmt.Errorf("failed to save session: %w", err)
	}

	return engine.State(), nil
}

// loadEngine - restores the session engine, a missing or unreadable session starts a fresh one.
// Unreadable sessions are deleted so later reads do not hit them again.
func (that *GameManager) loadEngine(ctx context.Context, sessionID string) (*tictactoe.Engine, error) {
	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		return tictactoe.NewEngine(), nil
	}

	var engine *tictactoe.Engine
	if err == nil {
		engine, err = tictactoe.Restore(session)
	}

	switch {
	case errors.Is(err, apperror.ErrCorruptedSession):
		that.discardSession(ctx, sessionID, err)
		return tictactoe.NewEngine(), nil
	case err != nil:
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return engine, nil
}

func (that *GameManager) discardSession(ctx context.Context, sessionID string, cause error) {
	log := that.logger.With("method", "discardSession", "session", sessionID)
	log.Warn("discarding stored session", "error", cause)

	err := that.sessionRepo.DeleteByID(ctx, sessionID)
	if err != nil && !errors.Is(err, apperror.ErrSessionNotFound) {
		log.Error("failed to delete session", "error", err)
	}
}

// sessionLocks - one mutex per session id, dropped once nobody holds or waits for it.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sessionLock)}
}

func (that *sessionLocks) lock(id string) func() {
	that.mu.Lock()
	lock, ok := that.locks[id]
	if !ok {
		lock = &sessionLock{}
		that.locks[id] = lock
	}
	lock.refs++
	that.mu.Unlock()

	lock.Lock()

	return func() {
		lock.Unlock()

		that.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(that.locks, id)
		}
		that.mu.Unlock()
	}
}
