package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/psellars/cardtable/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeGameExists          = "GAME_EXISTS"
	CodeGameFull            = "GAME_FULL"
	CodeGameStarted         = "GAME_STARTED"
	CodeGameNotStarted      = "GAME_NOT_STARTED"
	CodeGameFinished        = "GAME_FINISHED"
	CodeGameNotFinished     = "GAME_NOT_FINISHED"
	CodeNameTaken           = "NAME_TAKEN"
	CodeUnknownGameType     = "UNKNOWN_GAME_TYPE"
	CodeInsufficientPlayers = "INSUFFICIENT_PLAYERS"
	CodeRoomCodesExhausted  = "ROOM_CODES_EXHAUSTED"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeNotYourTurn         = "NOT_YOUR_TURN"
	CodeIllegalPlay         = "ILLEGAL_PLAY"
	CodeWrongTurnState      = "WRONG_TURN_STATE"
	CodeCardNotHeld         = "CARD_NOT_HELD"
	CodePickUpOwed          = "PICK_UP_OWED"
	CodeNotChoosingSuit     = "NOT_CHOOSING_SUIT"
	CodeChoosingSuit        = "CHOOSING_SUIT"
	CodeEmptyPond           = "EMPTY_POND"
	CodeExchangePending     = "EXCHANGE_PENDING"
	CodeWrongRole           = "WRONG_ROLE"
	CodeNoBurnPending       = "NO_BURN_PENDING"
	CodeConflict            = "CONFLICT"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrGameExists):
		return &httpError{http.StatusConflict, APIError{CodeGameExists, "Game already exists"}}
	case errors.Is(err, model.ErrGameFull):
		return &httpError{http.StatusConflict, APIError{CodeGameFull, "Game is full"}}
	case errors.Is(err, model.ErrGameStarted):
		return &httpError{http.StatusConflict, APIError{CodeGameStarted, "Game has already started"}}
	case errors.Is(err, model.ErrGameNotStarted):
		return &httpError{http.StatusConflict, APIError{CodeGameNotStarted, "Game has not started"}}
	case errors.Is(err, model.ErrGameFinished):
		return &httpError{http.StatusConflict, APIError{CodeGameFinished, "Game is over"}}
	case errors.Is(err, model.ErrGameNotFinished):
		return &httpError{http.StatusConflict, APIError{CodeGameNotFinished, "The game has not finished yet"}}
	case errors.Is(err, model.ErrNameTaken):
		return &httpError{http.StatusConflict, APIError{CodeNameTaken, "That name is already taken"}}
	case errors.Is(err, model.ErrUnknownGameType):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownGameType, "Unknown game type"}}
	case errors.Is(err, model.ErrInsufficientPlayers):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientPlayers, "Not enough players to start"}}
	case errors.Is(err, model.ErrRoomCodesExhausted):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeRoomCodesExhausted, "No room codes available, try again later"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrNotPlayerTurn):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "Not your turn"}}
	case errors.Is(err, model.ErrIllegalPlay):
		return &httpError{http.StatusForbidden, APIError{CodeIllegalPlay, err.Error()}}
	case errors.Is(err, model.ErrWrongTurnState):
		return &httpError{http.StatusConflict, APIError{CodeWrongTurnState, "That move is not available right now"}}
	case errors.Is(err, model.ErrCardNotHeld):
		return &httpError{http.StatusForbidden, APIError{CodeCardNotHeld, "You do not hold that card"}}
	case errors.Is(err, model.ErrPickUpOwed):
		return &httpError{http.StatusConflict, APIError{CodePickUpOwed, "You must pick up the penalty first"}}
	case errors.Is(err, model.ErrNotChoosingSuit):
		return &httpError{http.StatusConflict, APIError{CodeNotChoosingSuit, "No suit choice is pending"}}
	case errors.Is(err, model.ErrChoosingSuit):
		return &httpError{http.StatusConflict, APIError{CodeChoosingSuit, "A suit must be chosen first"}}
	case errors.Is(err, model.ErrEmptyPond):
		return &httpError{http.StatusConflict, APIError{CodeEmptyPond, "The pond is empty"}}
	case errors.Is(err, model.ErrExchangePending):
		return &httpError{http.StatusConflict, APIError{CodeExchangePending, "The card exchange has not finished"}}
	case errors.Is(err, model.ErrWrongRole):
		return &httpError{http.StatusForbidden, APIError{CodeWrongRole, "Your seat does not owe an exchange"}}
	case errors.Is(err, model.ErrNoBurnPending):
		return &httpError{http.StatusConflict, APIError{CodeNoBurnPending, "There is no burn to clear"}}
	case errors.Is(err, model.ErrVersionConflict):
		return &httpError{http.StatusConflict, APIError{CodeConflict, "The game changed underneath you, retry"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
