package rules

import "github.com/psellars/cardtable/internal/model"

// Crazy Eights penalty amounts
const (
	TwoPenalty         = 2
	QueenSpadesPenalty = 5
)

// CanPlayEights reports whether a card is a legal Crazy Eights play on the
// current face-up card. While a pickup obligation is pending, the only legal
// play is a 2 (stacking the penalty). Otherwise an 8 is always legal, and any
// other card must match the current card's rank or suit.
func CanPlayEights(card model.Card, current *model.Card, toPickUp int) bool {
	if toPickUp > 0 {
		return card.Rank == model.Rank2
	}
	if card.Rank == model.Rank8 {
		return true
	}
	if current == nil {
		return true
	}
	return card.Rank == current.Rank || card.Suit == current.Suit
}

// HasPlayableEights reports whether any card in the hand is legal to play
func HasPlayableEights(hand []model.Card, current *model.Card, toPickUp int) bool {
	for _, c := range hand {
		if CanPlayEights(c, current, toPickUp) {
			return true
		}
	}
	return false
}

// PenaltyFor returns the pickup penalty a played card adds to the shared
// accumulator: 2 for a two, 5 for the queen of spades, 0 otherwise.
func PenaltyFor(card model.Card) int {
	switch {
	case card.Rank == model.Rank2:
		return TwoPenalty
	case card.IsQueenOfSpades():
		return QueenSpadesPenalty
	default:
		return 0
	}
}
