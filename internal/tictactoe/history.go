package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// History - ordered board snapshots plus the cursor selecting the current one.
// Entry 0 is always the empty board.
type History struct {
	boards []entity.Board
	step   int
}

func NewHistory() *History {
	return &History{
		boards: []entity.Board{{}},
	}
}

func (that *History) Step() int {
	return that.step
}

func (that *History) Len() int {
	return len(that.boards)
}

// Current - board under the cursor.
func (that *History) Current() entity.Board {
	return that.boards[that.step]
}

// Boards - copy of every stored snapshot.
func (that *History) Boards() []entity.Board {
	boards := make([]entity.Board, len(that.boards))
	copy(boards, that.boards)

	return boards
}

// XIsNext - X moves on even steps.
func (that *History) XIsNext() bool {
	return that.step%2 == 0
}

func (that *History) NextMark() string {
	if that.XIsNext() {
		return entity.PlayerX
	}

	return entity.PlayerO
}

// ApplyMove - marks the cell for the next player on a copy of the current board, drops every
// entry after the cursor and appends the new board.
func (that *History) ApplyMove(cell int) (entity.Board, error) {
	if err := validateMove(that.Current(), cell); err != nil {
		return entity.Board{}, err
	}

	board := that.Current()
	board[cell] = that.NextMark()

	that.boards = append(that.boards[:that.step+1:that.step+1], board)
	that.step++

	return board, nil
}

// JumpTo - moves the cursor without touching stored entries. Out of range steps are rejected.
func (that *History) JumpTo(step int) error {
	if step < 0 || step >= that.Len() {
		return fmt.Errorf("%w: step %d, history has %d entries", apperror.ErrOutOfRangeStep, step, that.Len())
	}

	that.step = step

	return nil
}

// Reset - keeps only the empty starting board.
func (that *History) Reset() {
	that.boards = []entity.Board{{}}
	that.step = 0
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, cell int) error {
	if Evaluate(board).HasWinner() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}
