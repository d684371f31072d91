package handler

import (
	"encoding/json"
	"net/http"

	"github.com/psellars/cardtable/internal/api/request"
	"github.com/psellars/cardtable/internal/api/response"
	"github.com/psellars/cardtable/internal/services/gofish"
)

// GoFishHandler handles Go Fish move endpoints
type GoFishHandler struct {
	engine *gofish.Controller
}

// NewGoFishHandler creates a new Go Fish handler
func NewGoFishHandler(engine *gofish.Controller) *GoFishHandler {
	return &GoFishHandler{engine: engine}
}

// Ask handles POST /api/v1/games/{code}/gofish/ask
func (h *GoFishHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req request.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Rank == "" {
		WriteError(w, NewInvalidRequestError("rank is required"))
		return
	}

	game, err := h.engine.Ask(r.Context(), gameCode(r), req.PlayerName, req.Target, req.Rank)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FromModel(game))
}

// Draw handles POST /api/v1/games/{code}/gofish/draw
func (h *GoFishHandler) Draw(w http.ResponseWriter, r *http.Request) {
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
