package rules

import (
	"sort"

	"github.com/psellars/cardtable/internal/model"
)

// PairUp scans the player's hand for rank duplicates and moves every matched
// pair into PairedCards, incrementing NumPairs. Matching walks the hand
// sorted by rank symbol and consumes adjacent equal ranks pairwise
// left-to-right, so a three-of-a-kind yields exactly one pair with the odd
// card left in hand. Returns the number of pairs extracted.
func PairUp(p *model.Player) int {
	sorted := append([]model.Card(nil), p.Hand...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Rank < sorted[j].Rank
	})

	pairs := 0
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Rank == sorted[i-1].Rank {
			pairs++
			p.PairedCards = append(p.PairedCards, sorted[i-1], sorted[i])
			p.RemoveCard(sorted[i-1])
			p.RemoveCard(sorted[i])
			i++
		}
	}

	p.NumPairs += pairs
	return pairs
}

// GoFishOver reports whether the game has reached its terminal condition:
// an empty pond and every hand empty.
func GoFishOver(g *model.Game) bool {
	if len(g.Pond) > 0 {
		return false
	}
	for i := range g.Players {
		if g.Players[i].HasHand() {
			return false
		}
	}
	return true
}

// FishRankings returns player names ordered by pairs collected, descending.
// Ties keep join order.
func FishRankings(players []model.Player) []string {
	idx := make([]int, len(players))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return players[idx[a]].NumPairs > players[idx[b]].NumPairs
	})
	names := make([]string, len(players))
	for i, j := range idx {
		names[i] = players[j].Name
	}
	return names
}
