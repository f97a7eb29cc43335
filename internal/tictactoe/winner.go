package tictactoe

import "github.com/rocketscienceinc/tictactoe-board/internal/entity"

// WinCombos - rows, columns and diagonals in the order they are checked.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate - returns the first combo holding three equal marks, or an empty result.
func Evaluate(board entity.Board) entity.WinResult {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return entity.WinResult{
				Winner: a,
				Line:   []int{combo[0], combo[1], combo[2]},
			}
		}
	}

	return entity.WinResult{Winner: entity.EmptyCell, Line: []int{}}
}

// IsDraw - full board without a winner.
func IsDraw(board entity.Board) bool {
	return board.IsFull() && !Evaluate(board).HasWinner()
}
