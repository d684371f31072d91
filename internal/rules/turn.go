// Package rules holds the pure game logic: turn sequencing, play legality,
// burn detection, pairing and role assignment. Nothing in here touches
// storage or performs IO; engine controllers call into it and commit the
// resulting records.
package rules

import "github.com/psellars/cardtable/internal/model"

// NextPlayer returns the index of the next player to act, walking forward
// from currentTurn and counting only players with nonempty hands. skip=0
// lands on the very next active player; skip=1 skips one extra active player
// (a "skip a turn" effect). The caller must guarantee at least one active
// player remains.
func NextPlayer(players []model.Player, currentTurn, skip int) int {
	idx := (currentTurn + 1) % len(players)
	skipped := 0
	for !players[idx].HasHand() || skipped != skip {
		if players[idx].HasHand() {
			skipped++
		}
		idx = (idx + 1) % len(players)
	}
	return idx
}

// NextPlayerFishing is the Go Fish variant: a player with an empty hand is
// still up to play while the pond has cards left (they draw to restart).
func NextPlayerFishing(players []model.Player, currentTurn int, pondEmpty bool) int {
	idx := (currentTurn + 1) % len(players)
	for !players[idx].HasHand() && pondEmpty {
		idx = (idx + 1) % len(players)
	}
	return idx
}
