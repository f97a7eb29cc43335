package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

const (
	actionState           = "state"
	actionPlayCell        = "cell:play"
	actionGoToMove        = "move:jump"
	actionNewGame         = "game:new"
	actionResetScoreboard = "score:reset"
	actionError           = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type CellPayload struct {
	Cell *int `json:"cell"`
}

type StepPayload struct {
	Step *int `json:"step"`
}

// Response - reply to every message. State is omitted when the operation failed before reaching the board.
type Response struct {
	Action string            `json:"action"`
	State  *entity.GameState `json:"state,omitempty"`
	Error  string            `json:"error,omitempty"`
}

func sendMessage(conn *websocket.Conn, response Response) error {
	if err := conn.WriteJSON(response); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
