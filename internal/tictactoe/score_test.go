package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

func TestScoreTracker_RecordIfTerminal(t *testing.T) {
	t.Run("Counts a win for the winner", func(t *testing.T) {
		// Given: a fresh tracker and a board won by O
		tracker := NewScoreTracker()
		board := entity.Board{
			x, x, o,
			e, o, x,
			o, e, e,
		}

		// When: recording the board
		result := tracker.RecordIfTerminal(board)

		// Then: only O is incremented
		assert.Equal(t, o, result.Winner)
		assert.Equal(t, entity.Score{O: 1}, tracker.Score())
	})

	t.Run("Counts a draw for a full board without winner", func(t *testing.T) {
		tracker := NewScoreTracker()
		board := entity.Board{
			x, o, x,
			x, o, o,
			o, x, x,
		}

		tracker.RecordIfTerminal(board)

		assert.Equal(t, entity.Score{Draws: 1}, tracker.Score())
	})

	t.Run("Ignores unfinished boards", func(t *testing.T) {
		tracker := NewScoreTracker()

		tracker.RecordIfTerminal(entity.Board{x, o, e, e, e, e, e, e, e})

		assert.Equal(t, entity.Score{}, tracker.Score())
	})

	t.Run("Win on the last cell is not a draw", func(t *testing.T) {
		// Given: a full board where X completes a diagonal
		tracker := NewScoreTracker()
		board := entity.Board{
			x, o, x,
			o, x, o,
			o, x, x,
		}

		// When: recording the board
		tracker.RecordIfTerminal(board)

		// Then: it counts as a win for X
		assert.Equal(t, entity.Score{X: 1}, tracker.Score())
	})
}

func TestScoreTracker_Reset(t *testing.T) {
	tracker := NewScoreTracker()
	tracker.RecordIfTerminal(entity.Board{x, x, x, o, o, e, e, e, e})
	tracker.RecordIfTerminal(entity.Board{x, o, x, x, o, o, o, x, x})

	tracker.Reset()

	assert.Equal(t, entity.Score{}, tracker.Score())
}
