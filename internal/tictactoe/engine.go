package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// Engine - single board with move history and scoreboard. It is not safe for concurrent use;
// callers sharing an engine must serialize access.
type Engine struct {
	history *History
	score   *ScoreTracker
}

func NewEngine() *Engine {
	return &Engine{
		history: NewHistory(),
		score:   NewScoreTracker(),
	}
}

// State - read-only view of the current board, history and score.
func (that *Engine) State() entity.GameState {
	board := that.history.Current()
	result := Evaluate(board)
	isDraw := IsDraw(board)
	next := that.history.NextMark()

	cells := make([]entity.CellView, len(board))
	for i, mark := range board {
		cells[i] = entity.CellView{Index: i, Mark: mark, Winning: result.Contains(i)}
	}

	boards := that.history.Boards()
	history := make([]entity.HistoryEntry, len(boards))
	for step, snapshot := range boards {
		history[step] = entity.HistoryEntry{
			Step:    step,
			Label:   entity.MoveLabel(step),
			Current: step == that.history.Step(),
			Board:   snapshot,
		}
	}

	return entity.GameState{
		Board:   board,
		Cells:   cells,
		Step:    that.history.Step(),
		XIsNext: that.history.XIsNext(),
		Next:    next,
		Result:  result,
		IsDraw:  isDraw,
		Status:  entity.StatusText(result, isDraw, next),
		History: history,
		Score:   that.score.Score(),
	}
}

// PlayCell - plays the next mark on the cell and records the outcome if the game ends.
func (that *Engine) PlayCell(cell int) error {
	board, err := that.history.ApplyMove(cell)
	if err != nil {
		return fmt.Errorf("failed to play cell %d: %w", cell, err)
	}

	that.score.RecordIfTerminal(board)

	return nil
}

func (that *Engine) GoToMove(step int) error {
	if err := that.history.JumpTo(step); err != nil {
		return fmt.Errorf("failed to go to move: %w", err)
	}

	return nil
}

// NewGame - clears the board and history, the score is kept.
func (that *Engine) NewGame() {
	that.history.Reset()
}

func (that *Engine) ResetScoreboard() {
	that.score.Reset()
}

// Snapshot - exports the engine state for session storage.
func (that *Engine) Snapshot(id string) *entity.Session {
	return &entity.Session{
		ID:      id,
		History: that.history.Boards(),
		Step:    that.history.Step(),
		Score:   that.score.Score(),
	}
}

// Restore - builds an engine from stored state, rejecting snapshots no sequence of moves could produce.
func Restore(session *entity.Session) (*Engine, error) {
	if err := validateSession(session); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrCorruptedSession, err)
	}

	history := make([]entity.Board, len(session.History))
	copy(history, session.History)

	return &Engine{
		history: &History{boards: history, step: session.Step},
		score:   &ScoreTracker{score: session.Score},
	}, nil
}

var errSessionStart = errors.New("history must start with the empty board")

func validateSession(session *entity.Session) error {
	if len(session.History) == 0 || session.History[0] != (entity.Board{}) {
		return errSessionStart
	}

	if len(session.History) > entity.BoardSize+1 {
		return fmt.Errorf("history has %d entries", len(session.History))
	}

	if session.Step < 0 || session.Step >= len(session.History) {
		return fmt.Errorf("step %d is outside history of %d entries", session.Step, len(session.History))
	}

	if session.Score.X < 0 || session.Score.O < 0 || session.Score.Draws < 0 {
		return fmt.Errorf("negative score %+v", session.Score)
	}

	for step := 1; step < len(session.History); step++ {
		if err := validateTransition(session.History[step-1], session.History[step], step); err != nil {
			return err
		}
	}

	return nil
}

// validateTransition - consecutive boards must differ by exactly one mark of the player on turn.
func validateTransition(prev, next entity.Board, step int) error {
	if Evaluate(prev).HasWinner() {
		return fmt.Errorf("move at step %d follows a finished game", step)
	}

	mark := entity.PlayerO
	if step%2 == 1 {
		mark = entity.PlayerX
	}

	changed := 0
	for i := range prev {
		if prev[i] == next[i] {
			continue
		}

		if prev[i] != entity.EmptyCell || next[i] != mark {
			return fmt.Errorf("invalid change of cell %d at step %d", i, step)
		}

		changed++
	}

	if changed != 1 {
		return fmt.Errorf("step %d changes %d cells", step, changed)
	}

	return nil
}
