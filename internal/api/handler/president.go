package handler

import (
	"encoding/json"
	"net/http"

	"github.com/psellars/cardtable/internal/api/request"
	"github.com/psellars/cardtable/internal/api/response"
	"github.com/psellars/cardtable/internal/services/president"
)

// PresidentHandler handles President move endpoints
type PresidentHandler struct {
	engine *president.Controller
}

// NewPresidentHandler creates a new President handler
func NewPresidentHandler(engine *president.Controller) *PresidentHandler {
	return &PresidentHandler{engine: engine}
}

// Play handles POST /api/v1/games/{code}/president/play
func (h *PresidentHandler) Play(w http.ResponseWriter, r *http.Request) {
	var req request.PlaySetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	game, err := h.engine.Play(r.Context(), gameCode(r), req.PlayerName, req.Cards)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FromModel(game))
}

// Pass handles POST /api/v1/games/{code}/president/pass
func (h *PresidentHandler) Pass(w http.ResponseWriter, r *http.Request) {
	var req request.PassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	game, err := h.engine.Pass(r.Context(), gameCode(r), req.PlayerName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FromModel(game))
}

// Burn handles POST /api/v1/games/{code}/president/burn
func (h *PresidentHandler) Burn(w http.ResponseWriter, r *http.Request) {
	var req request.BurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	game, err := h.engine.Burn(r.Context(), gameCode(r), req.PlayerName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FromModel(game))
}

// Swap handles POST /api/v1/games/{code}/president/swap
func (h *PresidentHandler) Swap(w http.ResponseWriter, r *http.Request) {
	var req request.SwapCardsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	game, err := h.engine.SwapCards(r.Context(), gameCode(r), req.PlayerName, req.Cards)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FromModel(game))
}
