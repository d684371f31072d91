package handler

import (
	"encoding/json"
	"net/http"

	"github.com/psellars/cardtable/internal/api/request"
	"github.com/psellars/cardtable/internal/api/response"
	"github.com/psellars/cardtable/internal/services/crazyeights"
)

// EightsHandler handles Crazy Eights move endpoints
type EightsHandler struct {
	engine *crazyeights.Controller
}

// NewEightsHandler creates a new Crazy Eights handler
func NewEightsHandler(engine *crazyeights.Controller) *EightsHandler {
	return &EightsHandler{engine: engine}
}

// Play handles POST /api/v1/games/{code}/eights/play
func (h *EightsHandler) Play(w http.ResponseWriter, r *http.Request) {
	var req request.PlayCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	game, err := h.engine.PlayCard(r.Context(), gameCode(r), req.PlayerName, req.Card)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FromModel(game))
}

// ChooseSuit handles POST /api/v1/games/{code}/eights/choose-suit
func (h *EightsHandler) ChooseSuit(w http.ResponseWriter, r *http.Request) {
	var req request.ChooseSuitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Suit == "" {
		WriteError(w, NewInvalidRequestError("suit is required"))
		return
	}

	game, err := h.engine.ChooseSuit(r.Context(), gameCode(r), req.PlayerName, req.Suit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FromModel(game))
}

// Draw handles POST /api/v1/games/{code}/eights/draw
func (h *EightsHandler) Draw(w http.ResponseWriter, r *http.Request) {
	var req request.DrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	game, err := h.engine.Draw(r.Context(), gameCode(r), req.PlayerName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FromModel(game))
}

// PickUp handles POST /api/v1/games/{code}/eights/pickup
func (h *EightsHandler) PickUp(w http.ResponseWriter, r *http.Request) {
	var req request.PickUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	game, err := h.engine.PickUp(r.Context(), gameCode(r), req.PlayerName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FromModel(game))
}
