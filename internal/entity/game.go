package entity

import (
	"strconv"
	"time"
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	EmptyCell = ""

	BoardSize = 9
)

const (
	labelGameStart = "Go to game start"
	labelMove      = "Go to move #"
)

// Board - 3x3 grid in row-major order. It is a value type, so every move produces a new board.
type Board [BoardSize]string

// IsFull - reports whether every cell carries a mark.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// WinResult - outcome of evaluating a board. Line is empty when there is no winner.
type WinResult struct {
	Winner string `json:"winner"`
	Line   []int  `json:"line"`
}

func (that WinResult) HasWinner() bool {
	return that.Winner != EmptyCell
}

// Contains - reports whether the cell lies on the winning line.
func (that WinResult) Contains(cell int) bool {
	for _, idx := range that.Line {
		if idx == cell {
			return true
		}
	}

	return false
}

type Score struct {
	X     int `json:"x"`
	O     int `json:"o"`
	Draws int `json:"draws"`
}

// CellView - what a renderer needs to draw one square.
type CellView struct {
	Index   int    `json:"index"`
	Mark    string `json:"mark"`
	Winning bool   `json:"winning"`
}

// HistoryEntry - one board snapshot of the move list.
type HistoryEntry struct {
	Step    int    `json:"step"`
	Label   string `json:"label"`
	Current bool   `json:"current"`
	Board   Board  `json:"board"`
}

// GameState - immutable view of the engine handed to renderers.
type GameState struct {
	Board   Board          `json:"board"`
	Cells   []CellView     `json:"cells"`
	Step    int            `json:"step"`
	XIsNext bool           `json:"x_is_next"`
	Next    string         `json:"next"`
	Result  WinResult      `json:"result"`
	IsDraw  bool           `json:"is_draw"`
	Status  string         `json:"status"`
	History []HistoryEntry `json:"history"`
	Score   Score          `json:"score"`
}

// Session - serialized engine state kept in session storage.
type Session struct {
	ID        string    `json:"id"`
	History   []Board   `json:"history"`
	Step      int       `json:"step"`
	Score     Score     `json:"score"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MoveLabel - human-readable label of a history step.
func MoveLabel(step int) string {
	if step == 0 {
		return labelGameStart
	}

	return labelMove + strconv.Itoa(step)
}

// StatusText - status line shown above the board.
func StatusText(result WinResult, isDraw bool, next string) string {
	switch {
	case result.HasWinner():
		return "Winner: " + result.Winner
	case isDraw:
		return "Draw!"
	default:
		return "Next player: " + next
	}
}
