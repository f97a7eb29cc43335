package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-board/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
)

const maxMessageSize = 4096

type handlerFunc func(ctx context.Context, sessionID string, msg *Message) Response

type Server struct {
	logger   *slog.Logger
	game     usecase.GameUseCase
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, game usecase.GameUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		game:   game,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionState] = server.handleState
	server.handlers[actionPlayCell] = server.handlePlayCell
	server.handlers[actionGoToMove] = server.handleGoToMove
	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionResetScoreboard] = server.handleResetScoreboard

	return server
}

// ServeHTTP - upgrades the connection and serves messages for the session found in the request context.
func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	sessionID, ok := pkg.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "session is required", http.StatusUnauthorized)
		return
	}

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	log = log.With("session", sessionID)
	log.Info("WebSocket connection established")

	if err = that.handleMessages(r.Context(), conn, sessionID); err != nil {
		log.Error("error handling messages", "error", err)
		return
	}

	log.Info("WebSocket connection closed")
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn, sessionID string) error {
	log := that.logger.With("method", "handleMessages")

	conn.SetReadLimit(maxMessageSize)

	for {
		var message Message
		if err := conn.ReadJSON(&message); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}

			var (
				syntaxErr *json.SyntaxError
				typeErr   *json.UnmarshalTypeError
			)
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				log.Debug("malformed message", "error", err)
				if err = sendMessage(conn, errorResponse(actionError, "Malformed message")); err != nil {
					return err
				}
				continue
			}

			return err
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Debug("unknown action", "action", message.Action)
			if err := sendMessage(conn, errorResponse(actionError, "Unknown action")); err != nil {
				return err
			}
			continue
		}

		if err := sendMessage(conn, handler(ctx, sessionID, &message)); err != nil {
			return err
		}
	}
}
