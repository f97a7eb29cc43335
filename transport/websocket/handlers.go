package websocket

import (
	"context"
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

func (that *Server) handleState(ctx context.Context, sessionID string, msg *Message) Response {
	state, err := that.game.State(ctx, sessionID)
	return that.reply(msg.Action, state, err)
}

func (that *Server) handlePlayCell(ctx context.Context, sessionID string, msg *Message) Response {
	var payload CellPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.Cell == nil {
		return errorResponse(msg.Action, "Cell is required")
	}

	state, err := that.game.PlayCell(ctx, sessionID, *payload.Cell)
	return that.reply(msg.Action, state, err)
}

func (that *Server) handleGoToMove(ctx context.Context, sessionID string, msg *Message) Response {
	var payload StepPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.Step == nil {
		return errorResponse(msg.Action, "Step is required")
	}

	state, err := that.game.GoToMove(ctx, sessionID, *payload.Step)
	return that.reply(msg.Action, state, err)
}

func (that *Server) handleNewGame(ctx context.Context, sessionID string, msg *Message) Response {
	state, err := that.game.NewGame(ctx, sessionID)
	return that.reply(msg.Action, state, err)
}

func (that *Server) handleResetScoreboard(ctx context.Context, sessionID string, msg *Message) Response {
	state, err := that.game.ResetScoreboard(ctx, sessionID)
	return that.reply(msg.Action, state, err)
}

// reply - rejected moves still carry the unchanged state, internal failures carry none.
func (that *Server) reply(action string, state entity.GameState, err error) Response {
	if err == nil {
		return Response{Action: action, State: &state}
	}

	message, ok := apperror.UserMessage(err)
	if !ok {
		that.logger.Error("operation failed", "action", action, "error", err)
		return errorResponse(action, "Internal Server Error")
	}

	return Response{Action: action, State: &state, Error: message}
}

func errorResponse(action, message string) Response {
	return Response{Action: action, Error: message}
}
