package rules

import (
	"fmt"
	"sort"

	"github.com/psellars/cardtable/internal/model"
)

// presidentValues is the fixed President total order: 3 low, 2 high
var presidentValues = map[model.Rank]int{
	model.Rank3:  1,
	model.Rank4:  2,
	model.Rank5:  3,
	model.Rank6:  4,
	model.Rank7:  5,
	model.Rank8:  6,
	model.Rank9:  7,
	model.Rank10: 8,
	model.RankJ:  9,
	model.RankQ:  10,
	model.RankK:  11,
	model.RankA:  12,
	model.Rank2:  13,
}

// PresidentValue returns a rank's position in the President total order
func PresidentValue(rank model.Rank) int {
	return presidentValues[rank]
}

// SortPresidentHand orders a hand ascending by President value, in place
func SortPresidentHand(hand []model.Card) {
	sort.SliceStable(hand, func(i, j int) bool {
		return presidentValues[hand[i].Rank] < presidentValues[hand[j].Rank]
	})
}

// ValidatePresidentPlay checks a candidate play against the current set.
// cards must be a nonempty uniform-rank set of size 1..4. With a pending
// set, a non-2 play must match its cardinality and have rank >= the pending
// rank; k twos burn a (k+1)-card set, and a single 2 burns any single card.
func ValidatePresidentPlay(cards, current []model.Card) error {
	if len(cards) == 0 {
		return fmt.Errorf("%w: you must select some cards to play", model.ErrIllegalPlay)
	}
	for _, c := range cards[1:] {
		if c.Rank != cards[0].Rank {
			return fmt.Errorf("%w: all played cards must share a rank", model.ErrIllegalPlay)
		}
	}
	if len(current) == 0 {
		return nil
	}

	if cards[0].Rank == model.Rank2 {
		if len(current) == 1 && len(cards) > 1 {
			return fmt.Errorf("%w: you only need to play 1 two to burn this card", model.ErrIllegalPlay)
		}
		if len(current) > 1 && len(cards) != len(current)-1 {
			return fmt.Errorf("%w: you need %d twos to burn these cards", model.ErrIllegalPlay, len(current)-1)
		}
		return nil
	}

	if len(cards) != len(current) {
		return fmt.Errorf("%w: you have to play %d cards", model.ErrIllegalPlay, len(current))
	}
	if presidentValues[current[0].Rank] > presidentValues[cards[0].Rank] {
		return fmt.Errorf("%w: you have to play a card of equal or greater value than a %s",
			model.ErrIllegalPlay, current[0].Rank)
	}
	return nil
}

// IsBurn reports whether the played set burns the pile: any 2s on an open
// lead, an exact rank/size match, a single 2 on a single card, or N-1 twos
// on an N-card set.
func IsBurn(played, current []model.Card) bool {
	if len(current) == 0 {
		return played[0].Rank == model.Rank2
	}
	if played[0].Rank == model.Rank2 {
		if len(current) == 1 && len(played) == 1 {
			return true
		}
		return len(current) == len(played)+1
	}
	return len(played) == len(current) && played[0].Rank == current[0].Rank
}

// EveryonePassed reports whether the pass that moved the turn from oldTurn
// to newTurn wrapped past the last player who actually played a card. When
// true, the pile is cleared and newTurn anchors the next open lead.
func EveryonePassed(oldTurn, newTurn, lastPlayer int) bool {
	if newTurn > oldTurn {
		return oldTurn < lastPlayer && newTurn >= lastPlayer
	}
	return oldTurn < lastPlayer || newTurn >= lastPlayer
}

// RoleFor assigns a President role from the finishing order: first place is
// president, last is bum, and with at least 4 players second place and
// second-to-last are the vice roles.
func RoleFor(name string, rankings []string) model.Role {
	n := len(rankings)
	idx := -1
	for i, r := range rankings {
		if r == name {
			idx = i
			break
		}
	}

	switch {
	case idx == 0:
		return model.RolePresident
	case idx == n-1:
		return model.RoleBum
	case n >= 4 && idx == 1:
		return model.RoleVicePresident
	case n >= 4 && idx == n-2:
		return model.RoleViceBum
	default:
		return model.RoleNeutral
	}
}

// PresidentDealCounts returns the per-seat card distribution for a President
// game. Each player count gets its own row; larger tables deal the short
// hands first so the remainder lands on the later seats.
func PresidentDealCounts(numPlayers int) []int {
	switch numPlayers {
	case 2:
		return []int{26, 26}
	case 3:
		return []int{17, 17, 18}
	case 4:
		return []int{13, 13, 13, 13}
	case 5:
		return []int{10, 10, 10, 11, 11}
	case 6:
		return []int{8, 8, 9, 9, 9, 9}
	default:
		return nil
	}
}
