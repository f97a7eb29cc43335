package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

var errBadParam = errors.New("malformed request parameter")

type stateResponse struct {
	State entity.GameState `json:"state"`
	Error string           `json:"error,omitempty"`
}

// describeError - HTTP status and user facing message for an operation error.
func describeError(err error) (int, string) {
	if errors.Is(err, errBadParam) {
		return http.StatusBadRequest, "Malformed request"
	}

	message, ok := apperror.UserMessage(err)
	switch {
	case !ok:
		return http.StatusInternalServerError, "Internal Server Error"
	case errors.Is(err, apperror.ErrOutOfRangeStep):
		return http.StatusUnprocessableEntity, message
	default:
		return http.StatusConflict, message
	}
}

func intParam(r *http.Request, name string) (int, error) {
	value, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, errBadParam
	}

	return value, nil
}

// pages

func (that *handlers) index(w http.ResponseWriter, r *http.Request) {
	state, err := that.game.State(r.Context(), sessionID(r))
	if err != nil {
		that.logger.Error("failed to get state", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	page, err := that.tpl.renderPage(state, r.URL.Query().Get("error"))
	if err != nil {
		that.logger.Error("failed to render page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

func (that *handlers) playCell(w http.ResponseWriter, r *http.Request) {
	cell, err := intParam(r, "cell")
	if err == nil {
		_, err = that.game.PlayCell(r.Context(), sessionID(r), cell)
	}

	that.redirectHome(w, r, err)
}

func (that *handlers) goToMove(w http.ResponseWriter, r *http.Request) {
	step, err := intParam(r, "step")
	if err == nil {
		_, err = that.game.GoToMove(r.Context(), sessionID(r), step)
	}

	that.redirectHome(w, r, err)
}

func (that *handlers) newGame(w http.ResponseWriter, r *http.Request) {
	_, err := that.game.NewGame(r.Context(), sessionID(r))
	that.redirectHome(w, r, err)
}

func (that *handlers) resetScoreboard(w http.ResponseWriter, r *http.Request) {
	_, err := that.game.ResetScoreboard(r.Context(), sessionID(r))
	that.redirectHome(w, r, err)
}

// redirectHome - post/redirect/get back to the board, carrying a rejection as flash message.
func (that *handlers) redirectHome(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	status, message := describeError(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("operation failed", "path", r.URL.Path, "error", err)
		http.Error(w, message, status)
		return
	}

	http.Redirect(w, r, "/?error="+url.QueryEscape(message), http.StatusSeeOther)
}

// api

func (that *handlers) apiState(w http.ResponseWriter, r *http.Request) {
	state, err := that.game.State(r.Context(), sessionID(r))
	that.writeState(w, state, err)
}

func (that *handlers) apiPlayCell(w http.ResponseWriter, r *http.Request) {
	cell, err := intParam(r, "cell")
	if err != nil {
		that.writeState(w, entity.GameState{}, err)
		return
	}

	state, err := that.game.PlayCell(r.Context(), sessionID(r), cell)
	that.writeState(w, state, err)
}

func (that *handlers) apiGoToMove(w http.ResponseWriter, r *http.Request) {
	step, err := intParam(r, "step")
	if err != nil {
		that.writeState(w, entity.GameState{}, err)
		return
	}

	state, err := that.game.GoToMove(r.Context(), sessionID(r), step)
	that.writeState(w, state, err)
}

func (that *handlers) apiNewGame(w http.ResponseWriter, r *http.Request) {
	state, err := that.game.NewGame(r.Context(), sessionID(r))
	that.writeState(w, state, err)
}

func (that *handlers) apiResetScoreboard(w http.ResponseWriter, r *http.Request) {
	state, err := that.game.ResetScoreboard(r.Context(), sessionID(r))
	that.writeState(w, state, err)
}

func (that *handlers) writeState(w http.ResponseWriter, state entity.GameState, err error) {
	status := http.StatusOK
	response := stateResponse{State: state}

	if err != nil {
		status, response.Error = describeError(err)
		if status == http.StatusInternalServerError {
			that.logger.Error("operation failed", "error", err)
			writeJSON(w, status, map[string]string{"error": response.Error})
			return
		}
	}

	writeJSON(w, status, response)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
