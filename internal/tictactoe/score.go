package tictactoe

import "github.com/rocketscienceinc/tictactoe-board/internal/entity"

// ScoreTracker - tally of wins and draws. It is only fed boards produced by accepted moves.
type ScoreTracker struct {
	score entity.Score
}

func NewScoreTracker() *ScoreTracker {
	return &ScoreTracker{}
}

func (that *ScoreTracker) Score() entity.Score {
	return that.score
}

// RecordIfTerminal - counts a win or a draw when the board ends the game.
func (that *ScoreTracker) RecordIfTerminal(board entity.Board) entity.WinResult {
	result := Evaluate(board)

	switch {
	case result.Winner == entity.PlayerX:
		that.score.X++
	case result.Winner == entity.PlayerO:
		that.score.O++
	case board.IsFull():
		that.score.Draws++
	}

	return result
}

func (that *ScoreTracker) Reset() {
	that.score = entity.Score{}
}
