package request

import "github.com/psellars/cardtable/internal/model"

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	PlayerName string         `json:"player_name"`
	GameType   model.GameType `json:"game"`
}

// JoinGameRequest is the request body for joining a game
type JoinGameRequest struct {
	PlayerName string `json:"player_name"`
}

// LeaveGameRequest is the request body for leaving a game
type LeaveGameRequest struct {
	PlayerName string `json:"player_name"`
}

// AskRequest is the request body for a Go Fish ask
type AskRequest struct {
	PlayerName string     `json:"player_name"`
	Target     string     `json:"target"`
	Rank       model.Rank `json:"rank"`
}

// DrawRequest is the request body for drawing from the pond
type DrawRequest struct {
	PlayerName string `json:"player_name"`
}

// PlayCardRequest is the request body for playing a single card
type PlayCardRequest struct {
	PlayerName string     `json:"player_name"`
	Card       model.Card `json:"card"`
}

// ChooseSuitRequest is the request body for nominating a wild eight's suit
type ChooseSuitRequest struct {
	PlayerName string     `json:"player_name"`
	Suit       model.Suit `json:"suit"`
}

// PickUpRequest is the request body for paying a pickup penalty
type PickUpRequest struct {
	PlayerName string `json:"player_name"`
}

// PlaySetRequest is the request body for playing a President set
type PlaySetRequest struct {
	PlayerName string       `json:"player_name"`
	Cards      []model.Card `json:"cards"`
}

// PassRequest is the request body for passing a President turn
type PassRequest struct {
	PlayerName string `json:"player_name"`
}

// BurnRequest is the request body for clearing a burned pile
type BurnRequest struct {
	PlayerName string `json:"player_name"`
}

// SwapCardsRequest is the request body for the President pre-round exchange
type SwapCardsRequest struct {
	PlayerName string       `json:"player_name"`
	Cards      []model.Card `json:"cards"`
}
