package model

// Role is a player's President seating, derived from the previous game's
// finishing order. Everyone is neutral in a first game.
type Role string

const (
	RolePresident     Role = "president"
	RoleVicePresident Role = "vice-president"
	RoleNeutral       Role = "neutral"
	RoleViceBum       Role = "vice-bum"
	RoleBum           Role = "bum"
)

// Player is a participant in a single game session. Name is unique within the
// session. Only the fields relevant to the session's game type are populated.
type Player struct {
	Name string `json:"name"`
	Hand []Card `json:"hand"`

	// Go Fish
	NumPairs    int    `json:"numPairs,omitempty"`
	PairedCards []Card `json:"pairedCards,omitempty"`

	// President
	Role Role `json:"rank,omitempty"`
}

// HasHand reports whether the player still holds cards
func (p *Player) HasHand() bool {
	return len(p.Hand) > 0
}

// CountRank returns how many cards of the given rank the player holds
func (p *Player) CountRank(rank Rank) int {
	n := 0
	for _, c := range p.Hand {
		if c.Rank == rank {
			n++
		}
	}
	return n
}

// HoldsCard reports whether the exact card is in the player's hand
func (p *Player) HoldsCard(card Card) bool {
	for _, c := range p.Hand {
		if c == card {
			return true
		}
	}
	return false
}

// RemoveCard removes the first occurrence of the exact card from the hand.
// Returns false if the card is not held.
func (p *Player) RemoveCard(card Card) bool {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveRank removes every card of the given rank from the hand and returns
// the removed cards in hand order.
func (p *Player) RemoveRank(rank Rank) []Card {
	var removed []Card
	kept := p.Hand[:0]
	for _, c := range p.Hand {
		if c.Rank == rank {
			removed = append(removed, c)
		} else {
			kept = append(kept, c)
		}
	}
	p.Hand = kept
	return removed
}
