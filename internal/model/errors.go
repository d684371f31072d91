package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrGameNotFound        = errors.New("game not found")
	ErrGameFull            = errors.New("game is full")
	ErrGameStarted         = errors.New("game in progress")
	ErrGameNotStarted      = errors.New("game has not started")
	ErrGameFinished        = errors.New("game is already finished")
	ErrGameNotFinished     = errors.New("game is not finished")
	ErrNameTaken           = errors.New("name is already taken in this game")
	ErrAlreadyInGame       = errors.New("player is already in this game")
	ErrUnknownGameType     = errors.New("unrecognized game type")
	ErrInsufficientPlayers = errors.New("not enough players to start")
	ErrRoomCodesExhausted  = errors.New("too many games ongoing")

	// Turn and move errors
	ErrPlayerNotFound  = errors.New("player not found in game")
	ErrNotPlayerTurn   = errors.New("not this player's turn")
	ErrIllegalPlay     = errors.New("illegal play")
	ErrWrongTurnState  = errors.New("action not allowed in current turn state")
	ErrCardNotHeld     = errors.New("card is not in hand")
	ErrPickUpOwed      = errors.New("pending pickup must be paid or stacked with a 2")
	ErrNotChoosingSuit = errors.New("no suit choice is pending")
	ErrChoosingSuit    = errors.New("a suit choice is pending")
	ErrEmptyPond       = errors.New("the pond is empty")

	// President exchange errors
	ErrExchangePending = errors.New("card exchange must complete before play")
	ErrWrongRole       = errors.New("player's role cannot perform this exchange")
	ErrNoBurnPending   = errors.New("no burn is pending")

	// Storage errors
	ErrVersionConflict = errors.New("game record was modified concurrently")
	ErrGameExists      = errors.New("game already exists")
)
