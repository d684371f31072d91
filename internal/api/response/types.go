package response

import "github.com/psellars/cardtable/internal/model"

// GameResponse wraps the shared game record. The record already carries its
// wire shape, so responses hand it over whole.
type GameResponse struct {
	Game *model.Game `json:"game"`
}

// FromModel builds a GameResponse
func FromModel(g *model.Game) GameResponse {
	return GameResponse{Game: g}
}
