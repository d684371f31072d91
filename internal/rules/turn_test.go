package rules

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/psellars/cardtable/internal/model"
)

type TurnSuite struct {
	suite.Suite
}

func TestTurnSuite(t *testing.T) {
	suite.Run(t, new(TurnSuite))
}

// Helper to build players where a true entry means a nonempty hand
func (s *TurnSuite) players(hands ...bool) []model.Player {
	players := make([]model.Player, len(hands))
	for i, hasHand := range hands {
		players[i].Name = string(rune('A' + i))
		if hasHand {
			players[i].Hand = []model.Card{{Rank: model.Rank3, Suit: model.SuitClubs}}
		}
	}
	return players
}

func (s *TurnSuite) TestAdvancesToNextActivePlayer() {
	players := s.players(true, true, true)

	s.Equal(1, NextPlayer(players, 0, 0))
	s.Equal(2, NextPlayer(players, 1, 0))
	s.Equal(0, NextPlayer(players, 2, 0))
}

func (s *TurnSuite) TestSkipsEliminatedPlayers() {
	players := s.players(true, false, true)

	s.Equal(2, NextPlayer(players, 0, 0))
	s.Equal(0, NextPlayer(players, 2, 0))
}

func (s *TurnSuite) TestSkipOneExtraActivePlayer() {
	players := s.players(true, true, true, true)

	// A jack skips the next active player entirely
	s.Equal(2, NextPlayer(players, 0, 1))
	s.Equal(0, NextPlayer(players, 2, 1))
}

func (s *TurnSuite) TestSkipCountsOnlyActivePlayers() {
	players := s.players(true, false, true, true)

	// Player 1 is out, so the skip lands past player 2 onto player 3
	s.Equal(3, NextPlayer(players, 0, 1))
}

func (s *TurnSuite) TestSkipWithSingleActivePlayerReturnsThem() {
	players := s.players(true, false, false)

	s.Equal(0, NextPlayer(players, 0, 1))
}

func (s *TurnSuite) TestNeverReturnsEmptyHand() {
	players := s.players(false, true, false, true, false)

	for turn := 0; turn < len(players); turn++ {
		for skip := 0; skip <= 1; skip++ {
			next := NextPlayer(players, turn, skip)
			s.True(players[next].HasHand(), "turn=%d skip=%d returned inactive player %d", turn, skip, next)
		}
	}
}

func (s *TurnSuite) TestRoundRobinVisitsAllActivePlayers() {
	players := s.players(true, false, true, true)

	seen := map[int]bool{}
	turn := 0
	for i := 0; i < len(players); i++ {
		turn = NextPlayer(players, turn, 0)
		seen[turn] = true
	}
	s.Equal(map[int]bool{0: true, 2: true, 3: true}, seen)
}

func (s *TurnSuite) TestFishingKeepsEmptyHandedPlayerWhilePondRemains() {
	players := s.players(true, false, true)

	// Pond nonempty: the empty-handed player still gets their turn
	s.Equal(1, NextPlayerFishing(players, 0, false))
	// Pond empty: they are skipped
	s.Equal(2, NextPlayerFishing(players, 0, true))
}
