package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	// Session events
	EventPlayerJoined  EventType = "player_joined"
	EventPlayerLeft    EventType = "player_left"
	EventGameStarted   EventType = "game_started"
	EventGameReset     EventType = "game_reset"
	EventGameCancelled EventType = "game_cancelled"
	EventGameFinished  EventType = "game_finished"

	// Move events
	EventCardPlayed     EventType = "card_played"
	EventCardDrawn      EventType = "card_drawn"
	EventPenaltyPaid    EventType = "penalty_paid"
	EventSuitChosen     EventType = "suit_chosen"
	EventCardsTaken     EventType = "cards_taken"
	EventWentFishing    EventType = "went_fishing"
	EventPairsMade      EventType = "pairs_made"
	EventTurnPassed     EventType = "turn_passed"
	EventPileBurned     EventType = "pile_burned"
	EventCardsExchanged EventType = "cards_exchanged"
)

// Event is a discrete record of a state transition, broadcast alongside the
// committed game record. Unlike LastMove on the record itself, events are
// never overwritten by later transitions.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
	GameCode   GameCode  `json:"gameCode"`
	PlayerName string    `json:"playerName,omitempty"`
	Payload    any       `json:"payload,omitempty"`
}

// CardPlayedPayload carries the cards a player just played
type CardPlayedPayload struct {
	Cards []Card `json:"cards"`
}

// CardsTakenPayload carries a resolved Go Fish ask
type CardsTakenPayload struct {
	FromPlayer string `json:"fromPlayer"`
	Rank       Rank   `json:"rank"`
	Count      int    `json:"count"`
}

// PairsMadePayload carries the number of new pairs extracted from a hand
type PairsMadePayload struct {
	Pairs int `json:"pairs"`
}

// PenaltyPaidPayload carries the number of penalty cards drawn
type PenaltyPaidPayload struct {
	Count int `json:"count"`
}

// SuitChosenPayload carries the suit nominated for a wild eight
type SuitChosenPayload struct {
	Suit Suit `json:"suit"`
}

// CardsExchangedPayload carries a President pre-round exchange
type CardsExchangedPayload struct {
	WithPlayer string `json:"withPlayer"`
	Count      int    `json:"count"`
}

// GameFinishedPayload carries the finishing order
type GameFinishedPayload struct {
	Rankings []string `json:"rankings"`
}
