// Package handler contains the HTTP handlers for the JSON API. Handlers
// decode requests, call into the engine controllers and write the resulting
// shared record back out.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/psellars/cardtable/internal/api/request"
	"github.com/psellars/cardtable/internal/api/response"
	"github.com/psellars/cardtable/internal/model"
	"github.com/psellars/cardtable/internal/services/session"
)

// SessionHandler handles game lifecycle endpoints
type SessionHandler struct {
	sessions session.ControllerInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions session.ControllerInterface) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func gameCode(r *http.Request) model.GameCode {
	return model.GameCode(mux.Vars(r)["code"])
}

// Create handles POST /api/v1/games
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.PlayerName == "" {
		WriteError(w, NewInvalidRequestError("player_name is required"))
		return
	}

	game, err := h.sessions.CreateGame(r.Context(), req.PlayerName, req.GameType)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.FromModel(game))
}

// Get handles GET /api/v1/games/{code}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	game, err := h.sessions.GetGame(r.Context(), gameCode(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FromModel(game))
}

// Join handles POST /api/v1/games/{code}/join
func (h *SessionHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req request.JoinGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.PlayerName == "" {
		WriteError(w, NewInvalidRequestError("player_name is required"))
		return
	}

	game, err := h.sessions.JoinGame(r.Context(), gameCode(r), req.PlayerName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FromModel(game))
}

// Leave handles POST /api/v1/games/{code}/leave
func (h *SessionHandler) Leave(w http.ResponseWriter, r *http.Request) {
	var req request.LeaveGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.sessions.LeaveGame(r.Context(), gameCode(r), req.PlayerName); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Start handles POST /api/v1/games/{code}/start
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	game, err := h.sessions.StartGame(r.Context(), gameCode(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FromModel(game))
}

// Reset handles POST /api/v1/games/{code}/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	game, err := h.sessions.ResetGame(r.Context(), gameCode(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FromModel(game))
}

// Cancel handles DELETE /api/v1/games/{code}
func (h *SessionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.CancelGame(r.Context(), gameCode(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
