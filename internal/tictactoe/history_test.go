package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

func applyMoves(t *testing.T, history *History, cells ...int) {
	t.Helper()

	for _, cell := range cells {
		_, err := history.ApplyMove(cell)
		require.NoError(t, err, "cell %d", cell)
	}
}

func TestNewHistory(t *testing.T) {
	// When: creating a new history
	history := NewHistory()

	// Then: it holds only the empty board and X is next
	assert.Equal(t, 1, history.Len())
	assert.Equal(t, 0, history.Step())
	assert.Equal(t, entity.Board{}, history.Current())
	assert.True(t, history.XIsNext())
	assert.Equal(t, x, history.NextMark())
}

func TestHistory_ApplyMove(t *testing.T) {
	t.Run("Marks alternate starting with X", func(t *testing.T) {
		// Given: a new history
		history := NewHistory()

		// When: two moves are applied
		applyMoves(t, history, 4, 0)

		// Then: the current board carries both marks and the cursor is at the tip
		assert.Equal(t, entity.Board{o, e, e, e, x, e, e, e, e}, history.Current())
		assert.Equal(t, 2, history.Step())
		assert.Equal(t, 3, history.Len())
		assert.True(t, history.XIsNext())
	})

	t.Run("Earlier snapshots are not mutated", func(t *testing.T) {
		// Given: a history with one move
		history := NewHistory()
		applyMoves(t, history, 0)
		before := history.Boards()

		// When: another move is applied
		applyMoves(t, history, 1)

		// Then: stored snapshots stay as they were
		assert.Equal(t, before, history.Boards()[:2])
		assert.Equal(t, entity.Board{}, history.Boards()[0])
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a history where cell 0 is taken
		history := NewHistory()
		applyMoves(t, history, 0)

		// When: the same cell is played again
		_, err := history.ApplyMove(0)

		// Then: ErrCellOccupied is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, 2, history.Len())
		assert.Equal(t, 1, history.Step())
	})

	t.Run("Error on move after the game is won", func(t *testing.T) {
		// Given: X has won on the left column
		history := NewHistory()
		applyMoves(t, history, 0, 1, 3, 4, 6)

		// When: O tries to play
		_, err := history.ApplyMove(8)

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, 6, history.Len())
	})

	t.Run("Error on invalid cell index", func(t *testing.T) {
		history := NewHistory()

		for _, cell := range []int{-1, 9, 20} {
			// When: an index outside the board is played
			_, err := history.ApplyMove(cell)

			// Then: ErrInvalidCell is returned
			require.ErrorIs(t, err, apperror.ErrInvalidCell)
		}

		assert.Equal(t, 1, history.Len())
	})

	t.Run("Playing from an earlier step truncates later entries", func(t *testing.T) {
		// Given: five moves played, cursor at step 5
		history := NewHistory()
		applyMoves(t, history, 0, 1, 2, 3, 4)
		require.Equal(t, 6, history.Len())
		require.Equal(t, 5, history.Step())

		// When: jumping to step 2 and playing a new move
		require.NoError(t, history.JumpTo(2))
		board, err := history.ApplyMove(8)
		require.NoError(t, err)

		// Then: steps 3 and 4 are gone and the new move is the tip
		assert.Equal(t, 4, history.Len())
		assert.Equal(t, 3, history.Step())
		assert.Equal(t, entity.Board{x, o, e, e, e, e, e, e, x}, board)
		assert.Equal(t, board, history.Current())
	})
}

func TestHistory_JumpTo(t *testing.T) {
	t.Run("Moves the cursor without dropping entries", func(t *testing.T) {
		// Given: three moves played
		history := NewHistory()
		applyMoves(t, history, 0, 4, 8)

		// When: jumping to step 1
		err := history.JumpTo(1)

		// Then: the cursor moves, O is next and later entries are kept
		require.NoError(t, err)
		assert.Equal(t, 1, history.Step())
		assert.Equal(t, 4, history.Len())
		assert.False(t, history.XIsNext())
		assert.Equal(t, entity.Board{x, e, e, e, e, e, e, e, e}, history.Current())

		// And: jumping back to the tip restores the latest board
		require.NoError(t, history.JumpTo(3))
		assert.Equal(t, entity.Board{x, e, e, e, o, e, e, e, x}, history.Current())
	})

	t.Run("Rejects out of range steps", func(t *testing.T) {
		// Given: a history with two entries
		history := NewHistory()
		applyMoves(t, history, 0)

		for _, step := range []int{-1, 2, 100} {
			// When: jumping outside the history
			err := history.JumpTo(step)

			// Then: ErrOutOfRangeStep is returned and the cursor stays
			require.ErrorIs(t, err, apperror.ErrOutOfRangeStep)
			assert.Equal(t, 1, history.Step())
		}
	})
}

func TestHistory_Reset(t *testing.T) {
	// Given: a history with moves and a moved cursor
	history := NewHistory()
	applyMoves(t, history, 0, 1, 2)
	require.NoError(t, history.JumpTo(1))

	// When: resetting
	history.Reset()

	// Then: only the empty board is left
	assert.Equal(t, 1, history.Len())
	assert.Equal(t, 0, history.Step())
	assert.Equal(t, entity.Board{}, history.Current())
}
