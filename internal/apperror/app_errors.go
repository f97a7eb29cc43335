package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove    = errors.New("invalid move")
	ErrOutOfRangeStep = errors.New("step is out of history range")

	ErrGameFinished = fmt.Errorf("%w: game is already finished", ErrInvalidMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrInvalidCell  = fmt.Errorf("%w: invalid cell index", ErrInvalidMove)

	ErrSessionNotFound  = errors.New("session not found")
	ErrCorruptedSession = errors.New("stored session is corrupted")
)

// UserMessage - message safe to show to the player, false for errors that are not player mistakes.
func UserMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrCellOccupied):
		return "Cell is already occupied", true
	case errors.Is(err, ErrGameFinished):
		return "Game is already finished", true
	case errors.Is(err, ErrInvalidCell):
		return "No such cell", true
	case errors.Is(err, ErrOutOfRangeStep):
		return "No such move", true
	default:
		return "", false
	}
}
