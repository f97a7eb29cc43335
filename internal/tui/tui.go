package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
)

const boardWidth = 3

// Game - terminal front end driving a single in-process engine.
type Game struct {
	engine *tictactoe.Engine

	app    *tview.Application
	board  *tview.Table
	moves  *tview.List
	status *tview.TextView
	score  *tview.TextView
	layout *tview.Flex

	message string
}

func New(engine *tictactoe.Engine) *Game {
	game := &Game{
		engine: engine,
		app:    tview.NewApplication(),
		board:  tview.NewTable(),
		moves:  tview.NewList(),
		status: tview.NewTextView(),
		score:  tview.NewTextView(),
	}

	game.board.SetBorders(true).
		SetSelectable(true, true).
		SetSelectedFunc(func(row, col int) {
			game.playCell(row*boardWidth + col)
		})

	game.moves.ShowSecondaryText(false).
		SetSelectedFunc(func(index int, _, _ string, _ rune) {
			game.goToMove(index)
		})
	game.moves.SetBorder(true).SetTitle(" Moves ")

	game.status.SetDynamicColors(true)
	game.score.SetBorder(true).SetTitle(" Score ")

	help := tview.NewTextView().
		SetText("enter: play/jump  1-9: play cell  tab: switch  n: new game  r: reset score  q: quit")

	side := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(game.moves, 0, 1, false).
		AddItem(game.score, 5, 0, false)

	play := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(game.status, 2, 0, false).
		AddItem(game.board, 7, 0, true).
		AddItem(help, 0, 1, false)

	game.layout = tview.NewFlex().
		AddItem(play, 0, 1, true).
		AddItem(side, 30, 0, false)

	game.app.SetInputCapture(game.handleKey)
	game.refresh()

	return game
}

// Run - blocks until the player quits.
func (that *Game) Run() error {
	if err := that.app.SetRoot(that.layout, true).SetFocus(that.board).Run(); err != nil {
		return fmt.Errorf("failed to run terminal ui: %w", err)
	}

	return nil
}

func (that *Game) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyTab:
		if that.board.HasFocus() {
			that.app.SetFocus(that.moves)
		} else {
			that.app.SetFocus(that.board)
		}
		return nil
	case tcell.KeyEscape:
		that.app.Stop()
		return nil
	case tcell.KeyRune:
	default:
		return event
	}

	switch r := event.Rune(); {
	case r == 'q':
		that.app.Stop()
	case r == 'n':
		that.newGame()
	case r == 'r':
		that.resetScoreboard()
	case r >= '1' && r <= '9':
		that.playCell(int(r - '1'))
	default:
		return event
	}

	return nil
}

func (that *Game) playCell(cell int) {
	that.apply(that.engine.PlayCell(cell))
}

func (that *Game) goToMove(step int) {
	that.apply(that.engine.GoToMove(step))
}

func (that *Game) newGame() {
	that.engine.NewGame()
	that.apply(nil)
}

func (that *Game) resetScoreboard() {
	that.engine.ResetScoreboard()
	that.apply(nil)
}

func (that *Game) apply(err error) {
	that.message = ""
	if err != nil {
		message, ok := apperror.UserMessage(err)
		if !ok {
			message = err.Error()
		}
		that.message = message
	}

	that.refresh()
}

// refresh - redraws every widget from the engine state.
func (that *Game) refresh() {
	state := that.engine.State()

	for _, cell := range state.Cells {
		that.board.SetCell(cell.Index/boardWidth, cell.Index%boardWidth,
			tview.NewTableCell(cellText(cell)).
				SetAlign(tview.AlignCenter).
				SetExpansion(1).
				SetTextColor(cellColor(cell)))
	}

	that.moves.Clear()
	for _, entry := range state.History {
		that.moves.AddItem(entry.Label, "", 0, nil)
	}
	that.moves.SetCurrentItem(state.Step)

	that.status.SetText(statusText(state.Status, that.message))
	that.score.SetText(scoreText(state.Score))
}

func cellText(cell entity.CellView) string {
	if cell.Mark == entity.EmptyCell {
		return fmt.Sprintf(" %d ", cell.Index+1)
	}

	return " " + cell.Mark + " "
}

func cellColor(cell entity.CellView) tcell.Color {
	switch {
	case cell.Winning:
		return tcell.ColorGreen
	case cell.Mark == entity.PlayerX:
		return tcell.ColorYellow
	case cell.Mark == entity.PlayerO:
		return tcell.ColorAqua
	default:
		return tcell.ColorGray
	}
}

func statusText(status, message string) string {
	if message == "" {
		return status
	}

	return fmt.Sprintf("%s\n[red]%s[-]", status, message)
}

func scoreText(score entity.Score) string {
	return fmt.Sprintf("X: %d\nO: %d\nDraws: %d", score.X, score.O, score.Draws)
}
