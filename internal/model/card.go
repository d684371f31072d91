package model

import "fmt"

// Suit is one of the four french suits
type Suit string

const (
	SuitHearts   Suit = "hearts"
	SuitDiamonds Suit = "diamonds"
	SuitClubs    Suit = "clubs"
	SuitSpades   Suit = "spades"
)

// Suits lists all suits in deck-construction order
var Suits = []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

// Rank is a card rank. Ten is "10", face cards are single letters.
type Rank string

const (
	Rank2  Rank = "2"
	Rank3  Rank = "3"
	Rank4  Rank = "4"
	Rank5  Rank = "5"
	Rank6  Rank = "6"
	Rank7  Rank = "7"
	Rank8  Rank = "8"
	Rank9  Rank = "9"
	Rank10 Rank = "10"
	RankJ  Rank = "J"
	RankQ  Rank = "Q"
	RankK  Rank = "K"
	RankA  Rank = "A"
)

// Ranks lists all ranks in deck-construction order
var Ranks = []Rank{
	Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8,
	Rank9, Rank10, RankJ, RankQ, RankK, RankA,
}

// Card is an immutable card value. Two cards are equal iff rank and suit match.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// String returns a human-readable card name, e.g. "Q of spades"
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// IsQueenOfSpades reports whether this is the pick-up-five penalty card
func (c Card) IsQueenOfSpades() bool {
	return c.Rank == RankQ && c.Suit == SuitSpades
}

// NewDeck returns the full 52-card deck in a fixed order
func NewDeck() []Card {
	deck := make([]Card, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}
