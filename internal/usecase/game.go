package usecase

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// GameUseCase - per session board operations consumed by the transports.
// Every method returns the state after the call, also when the operation was rejected.
type GameUseCase interface {
	State(ctx context.Context, sessionID string) (entity.GameState, error)

	PlayCell(ctx context.Context, sessionID string, cell int) (entity.GameState, error)
	GoToMove(ctx context.Context, sessionID string, step int) (entity.GameState, error)

	NewGame(ctx context.Context, sessionID string) (entity.GameState, error)
	ResetScoreboard(ctx context.Context, sessionID string) (entity.GameState, error)
}
