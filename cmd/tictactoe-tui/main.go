package main

import (
	"fmt"
	"os"

	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-board/internal/tui"
)

// main - plays a local game in the terminal, state lives only for the process lifetime.
func main() {
	if err := tui.New(tictactoe.NewEngine()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
		os.Exit(1)
	}
}
