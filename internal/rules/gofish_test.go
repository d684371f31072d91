package rules

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/psellars/cardtable/internal/model"
)

type GoFishRulesSuite struct {
	suite.Suite
}

func TestGoFishRulesSuite(t *testing.T) {
	suite.Run(t, new(GoFishRulesSuite))
}

func card(rank model.Rank, suit model.Suit) model.Card {
	return model.Card{Rank: rank, Suit: suit}
}

func (s *GoFishRulesSuite) TestPairUpExtractsOnePairFromThreeOfAKind() {
	p := &model.Player{
		Name: "alice",
		Hand: []model.Card{
			card(model.Rank3, model.SuitHearts),
			card(model.Rank3, model.SuitClubs),
			card(model.Rank3, model.SuitSpades),
			card(model.Rank5, model.SuitDiamonds),
		},
	}

	pairs := PairUp(p)

	s.Equal(1, pairs)
	s.Equal(1, p.NumPairs)
	s.Len(p.Hand, 2)
	s.Len(p.PairedCards, 2)
	s.Equal(1, p.CountRank(model.Rank3))
	s.Equal(1, p.CountRank(model.Rank5))
}

func (s *GoFishRulesSuite) TestPairUpFourOfAKindMakesTwoPairs() {
	p := &model.Player{Name: "alice"}
	for _, suit := range model.Suits {
		p.Hand = append(p.Hand, card(model.RankK, suit))
	}

	pairs := PairUp(p)

	s.Equal(2, pairs)
	s.Empty(p.Hand)
	s.Len(p.PairedCards, 4)
}

func (s *GoFishRulesSuite) TestPairUpNoDuplicates() {
	p := &model.Player{
		Name: "alice",
		Hand: []model.Card{
			card(model.Rank2, model.SuitHearts),
			card(model.Rank9, model.SuitClubs),
			card(model.RankA, model.SuitSpades),
		},
	}

	s.Equal(0, PairUp(p))
	s.Len(p.Hand, 3)
	s.Empty(p.PairedCards)
}

func (s *GoFishRulesSuite) TestPairUpAccumulatesAcrossCalls() {
	p := &model.Player{
		Name: "alice",
		Hand: []model.Card{
			card(model.Rank7, model.SuitHearts),
			card(model.Rank7, model.SuitClubs),
		},
	}
	PairUp(p)

	p.Hand = append(p.Hand,
		card(model.RankJ, model.SuitHearts),
		card(model.RankJ, model.SuitDiamonds),
	)
	PairUp(p)

	s.Equal(2, p.NumPairs)
	s.Len(p.PairedCards, 4)
}

func (s *GoFishRulesSuite) TestGoFishOver() {
	g := &model.Game{
		Type: model.GameGoFish,
		Players: []model.Player{
			{Name: "alice"},
			{Name: "bob"},
		},
	}

	s.True(GoFishOver(g))

	g.Pond = []model.Card{card(model.Rank4, model.SuitClubs)}
	s.False(GoFishOver(g))

	g.Pond = nil
	g.Players[1].Hand = []model.Card{card(model.Rank4, model.SuitClubs)}
	s.False(GoFishOver(g))
}

func (s *GoFishRulesSuite) TestFishRankingsOrderedByPairsDescending() {
	players := []model.Player{
		{Name: "alice", NumPairs: 3},
		{Name: "bob", NumPairs: 7},
		{Name: "carol", NumPairs: 3},
	}

	s.Equal([]string{"bob", "alice", "carol"}, FishRankings(players))
}
