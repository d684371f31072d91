package president

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/psellars/cardtable/internal/dependencies/mocks"
	"github.com/psellars/cardtable/internal/model"
	"github.com/psellars/cardtable/internal/record"
	"github.com/psellars/cardtable/internal/rules"
	"github.com/psellars/cardtable/internal/storage/memory"
	"github.com/psellars/cardtable/internal/testutil"
)

type PresidentSuite struct {
	suite.Suite
	adapter    *record.Adapter
	controller *Controller
	ctx        context.Context
}

func TestPresidentSuite(t *testing.T) {
	suite.Run(t, new(PresidentSuite))
}

func (s *PresidentSuite) SetupTest() {
	clk := mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.adapter = record.New(memory.New(), clk, testutil.NopLogger())
	s.controller = NewController(s.adapter, testutil.NopLogger())
	s.ctx = context.Background()
}

func card(rank model.Rank, suit model.Suit) model.Card {
	return model.Card{Rank: rank, Suit: suit}
}

func set(cards ...model.Card) []model.Card {
	return cards
}

// newGame seeds a started session with the exchange already settled. Hands
// are given in seating order alice, bob, carol, dan.
func (s *PresidentSuite) newGame(hands ...[]model.Card) {
	names := []string{"alice", "bob", "carol", "dan"}
	players := make([]model.Player, len(hands))
	for i, hand := range hands {
		rules.SortPresidentHand(hand)
		players[i] = model.Player{Name: names[i], Hand: hand, Role: model.RoleNeutral}
	}
	err := s.adapter.Create(s.ctx, &model.Game{
		Code:            "1234",
		Type:            model.GamePresident,
		Players:         players,
		Started:         true,
		PresPassedCards: true,
		VicePassedCards: true,
	})
	s.Require().NoError(err)
}

func (s *PresidentSuite) mutate(fn func(g *model.Game)) {
	_, err := s.adapter.Mutate(s.ctx, "1234", func(g *model.Game) ([]model.Event, error) {
		fn(g)
		return nil, nil
	})
	s.Require().NoError(err)
}

func (s *PresidentSuite) TestPlayOpensLead() {
	s.newGame(
		set(card(model.Rank5, model.SuitSpades), card(model.RankK, model.SuitClubs)),
		set(card(model.Rank9, model.SuitClubs), card(model.Rank9, model.SuitHearts)),
	)

	game, err := s.controller.Play(s.ctx, "1234", "alice", set(card(model.Rank5, model.SuitSpades)))
	s.Require().NoError(err)

	s.Equal(set(card(model.Rank5, model.SuitSpades)), game.CurrentSet)
	s.Equal("bob", game.CurrentPlayer().Name)
	s.Equal(0, game.LastPlayer)
	s.False(game.Burning)
}

func (s *PresidentSuite) TestPlayMustMatchCardinality() {
	s.newGame(
		set(card(model.Rank9, model.SuitClubs), card(model.Rank9, model.SuitHearts), card(model.Rank3, model.SuitClubs)),
		set(card(model.RankK, model.SuitClubs), card(model.RankK, model.SuitHearts)),
	)
	s.mutate(func(g *model.Game) {
		g.CurrentSet = set(card(model.Rank5, model.SuitSpades), card(model.Rank5, model.SuitHearts))
		g.LastPlayer = 1
	})

	_, err := s.controller.Play(s.ctx, "1234", "alice", set(card(model.Rank9, model.SuitClubs)))
	s.ErrorIs(err, model.ErrIllegalPlay)

	game, err := s.controller.Play(s.ctx, "1234", "alice",
		set(card(model.Rank9, model.SuitClubs), card(model.Rank9, model.SuitHearts)))
	s.Require().NoError(err)
	s.Equal("bob", game.CurrentPlayer().Name)
}

func (s *PresidentSuite) TestPlayLowerRankRejected() {
	s.newGame(
		set(card(model.Rank4, model.SuitClubs), card(model.RankK, model.SuitClubs)),
		set(card(model.Rank9, model.SuitClubs)),
	)
	s.mutate(func(g *model.Game) {
		g.CurrentSet = set(card(model.Rank10, model.SuitSpades))
		g.LastPlayer = 1
	})

	_, err := s.controller.Play(s.ctx, "1234", "alice", set(card(model.Rank4, model.SuitClubs)))
	s.ErrorIs(err, model.ErrIllegalPlay)
}

func (s *PresidentSuite) TestPlayCardNotHeld() {
	s.newGame(
		set(card(model.Rank4, model.SuitClubs)),
		set(card(model.Rank9, model.SuitClubs)),
	)

	_, err := s.controller.Play(s.ctx, "1234", "alice", set(card(model.RankA, model.SuitSpades)))
	s.ErrorIs(err, model.ErrCardNotHeld)
}

func (s *PresidentSuite) TestEqualRankBurnsAndKeepsTurn() {
	s.newGame(
		set(card(model.Rank5, model.SuitSpades), card(model.RankK, model.SuitClubs)),
		set(card(model.Rank9, model.SuitClubs)),
	)
	s.mutate(func(g *model.Game) {
		g.CurrentSet = set(card(model.Rank5, model.SuitHearts))
		g.LastPlayer = 1
	})

	game, err := s.controller.Play(s.ctx, "1234", "alice", set(card(model.Rank5, model.SuitSpades)))
	s.Require().NoError(err)

	s.True(game.Burning)
	s.Equal("alice", game.CurrentPlayer().Name)

	// Everything else waits for the burn to clear
	_, err = s.controller.Play(s.ctx, "1234", "alice", set(card(model.RankK, model.SuitClubs)))
	s.ErrorIs(err, model.ErrWrongTurnState)

	game, err = s.controller.Burn(s.ctx, "1234", "alice")
	s.Require().NoError(err)
	s.False(game.Burning)
	s.Empty(game.CurrentSet)
	s.Equal("alice", game.CurrentPlayer().Name)
	s.Require().NotNil(game.LastMove)
	s.Equal(model.MoveBurnCard, game.LastMove.Kind)
}

func (s *PresidentSuite) TestSingleTwoBurnsSingleCard() {
	s.newGame(
		set(card(model.Rank2, model.SuitSpades), card(model.Rank4, model.SuitClubs)),
		set(card(model.Rank9, model.SuitClubs)),
	)
	s.mutate(func(g *model.Game) {
		g.CurrentSet = set(card(model.RankA, model.SuitHearts))
		g.LastPlayer = 1
	})

	game, err := s.controller.Play(s.ctx, "1234", "alice", set(card(model.Rank2, model.SuitSpades)))
	s.Require().NoError(err)
	s.True(game.Burning)
}

func (s *PresidentSuite) TestTwosBurnOneLargerSet() {
	s.newGame(
		set(card(model.Rank2, model.SuitSpades), card(model.Rank2, model.SuitHearts), card(model.Rank4, model.SuitClubs)),
		set(card(model.Rank9, model.SuitClubs)),
	)
	s.mutate(func(g *model.Game) {
		g.CurrentSet = set(
			card(model.RankA, model.SuitHearts),
			card(model.RankA, model.SuitSpades),
			card(model.RankA, model.SuitClubs),
		)
		g.LastPlayer = 1
	})

	// Three aces need exactly two twos
	_, err := s.controller.Play(s.ctx, "1234", "alice", set(card(model.Rank2, model.SuitSpades)))
	s.ErrorIs(err, model.ErrIllegalPlay)

	game, err := s.controller.Play(s.ctx, "1234", "alice",
		set(card(model.Rank2, model.SuitSpades), card(model.Rank2, model.SuitHearts)))
	s.Require().NoError(err)
	s.True(game.Burning)
}

func (s *PresidentSuite) TestPassRoundClearsPile() {
	s.newGame(
		set(card(model.Rank9, model.SuitClubs), card(model.Rank4, model.SuitClubs)),
		set(card(model.Rank5, model.SuitHearts)),
		set(card(model.Rank6, model.SuitHearts)),
	)

	game, err := s.controller.Play(s.ctx, "1234", "alice", set(card(model.Rank9, model.SuitClubs)))
	s.Require().NoError(err)
	s.Equal("bob", game.CurrentPlayer().Name)

	game, err = s.controller.Pass(s.ctx, "1234", "bob")
	s.Require().NoError(err)
	s.NotEmpty(game.CurrentSet)
	s.Equal("carol", game.CurrentPlayer().Name)

	// Carol's pass wraps back past alice, who led last
	game, err = s.controller.Pass(s.ctx, "1234", "carol")
	s.Require().NoError(err)
	s.Empty(game.CurrentSet)
	s.Equal("alice", game.CurrentPlayer().Name)
	s.Equal(0, game.LastPlayer)
	s.Contains(game.GameUpdate, "lead")
}

func (s *PresidentSuite) TestPassOnOpenLeadRejected() {
	s.newGame(
		set(card(model.Rank9, model.SuitClubs)),
		set(card(model.Rank5, model.SuitHearts)),
	)

	_, err := s.controller.Pass(s.ctx, "1234", "alice")
	s.ErrorIs(err, model.ErrIllegalPlay)
}

func (s *PresidentSuite) TestBurnWithoutBurnPending() {
	s.newGame(
		set(card(model.Rank9, model.SuitClubs)),
		set(card(model.Rank5, model.SuitHearts)),
	)

	_, err := s.controller.Burn(s.ctx, "1234", "alice")
	s.ErrorIs(err, model.ErrNoBurnPending)
}

func (s *PresidentSuite) TestMovesBlockedWhileExchangePending() {
	s.newGame(
		set(card(model.Rank9, model.SuitClubs)),
		set(card(model.Rank5, model.SuitHearts)),
	)
	s.mutate(func(g *model.Game) { g.PresPassedCards = false })

	_, err := s.controller.Play(s.ctx, "1234", "alice", set(card(model.Rank9, model.SuitClubs)))
	s.ErrorIs(err, model.ErrExchangePending)
}

func (s *PresidentSuite) TestPresidentExchange() {
	s.newGame(
		set(
			card(model.Rank3, model.SuitClubs),
			card(model.Rank4, model.SuitClubs),
			card(model.Rank9, model.SuitClubs),
		),
		set(
			card(model.Rank5, model.SuitHearts),
			card(model.RankA, model.SuitHearts),
			card(model.Rank2, model.SuitHearts),
		),
	)
	s.mutate(func(g *model.Game) {
		g.Players[0].Role = model.RolePresident
		g.Players[1].Role = model.RoleBum
		g.PresPassedCards = false
		g.Turn = 1
		g.LastPlayer = 1
	})

	game, err := s.controller.SwapCards(s.ctx, "1234", "alice",
		set(card(model.Rank3, model.SuitClubs), card(model.Rank4, model.SuitClubs)))
	s.Require().NoError(err)

	alice := game.GetPlayer("alice")
	bob := game.GetPlayer("bob")

	// The president traded their two throwaways for the bum's ace and two
	s.True(alice.HoldsCard(card(model.RankA, model.SuitHearts)))
	s.True(alice.HoldsCard(card(model.Rank2, model.SuitHearts)))
	s.True(bob.HoldsCard(card(model.Rank3, model.SuitClubs)))
	s.True(bob.HoldsCard(card(model.Rank4, model.SuitClubs)))
	s.Len(alice.Hand, 3)
	s.Len(bob.Hand, 3)

	s.True(game.PresPassedCards)
	// Play opens with the bum leading
	s.Equal("bob", game.CurrentPlayer().Name)

	_, err = s.controller.Play(s.ctx, "1234", "bob", set(card(model.Rank3, model.SuitClubs)))
	s.NoError(err)
}

func (s *PresidentSuite) TestExchangeWrongCount() {
	s.newGame(
		set(card(model.Rank3, model.SuitClubs), card(model.Rank4, model.SuitClubs)),
		set(card(model.Rank5, model.SuitHearts), card(model.RankA, model.SuitHearts)),
	)
	s.mutate(func(g *model.Game) {
		g.Players[0].Role = model.RolePresident
		g.Players[1].Role = model.RoleBum
		g.PresPassedCards = false
	})

	_, err := s.controller.SwapCards(s.ctx, "1234", "alice", set(card(model.Rank3, model.SuitClubs)))
	s.ErrorIs(err, model.ErrIllegalPlay)
}

func (s *PresidentSuite) TestExchangeNeedsWinningSeat() {
	s.newGame(
		set(card(model.Rank3, model.SuitClubs)),
		set(card(model.Rank5, model.SuitHearts)),
	)
	s.mutate(func(g *model.Game) { g.PresPassedCards = false })

	_, err := s.controller.SwapCards(s.ctx, "1234", "alice", set(card(model.Rank3, model.SuitClubs)))
	s.ErrorIs(err, model.ErrWrongRole)
}

func (s *PresidentSuite) TestGoingOutSeatsEveryone() {
	s.newGame(
		set(card(model.RankK, model.SuitClubs)),
		set(card(model.Rank5, model.SuitHearts), card(model.Rank6, model.SuitHearts)),
		set(card(model.Rank9, model.SuitClubs), card(model.Rank9, model.SuitHearts)),
		set(card(model.Rank4, model.SuitClubs), card(model.Rank4, model.SuitHearts)),
	)

	// Alice leads her last card and goes out
	game, err := s.controller.Play(s.ctx, "1234", "alice", set(card(model.RankK, model.SuitClubs)))
	s.Require().NoError(err)
	s.False(game.Finished)
	s.Equal([]string{"alice"}, game.PlayerRankings)
	s.Equal("bob", game.CurrentPlayer().Name)

	// Nobody answers the king; the pass round hands bob the lead
	game, err = s.controller.Pass(s.ctx, "1234", "bob")
	s.Require().NoError(err)
	game, err = s.controller.Pass(s.ctx, "1234", "carol")
	s.Require().NoError(err)
	game, err = s.controller.Pass(s.ctx, "1234", "dan")
	s.Require().NoError(err)
	s.Empty(game.CurrentSet)
	s.Equal("bob", game.CurrentPlayer().Name)

	game, err = s.controller.Play(s.ctx, "1234", "bob", set(card(model.Rank5, model.SuitHearts)))
	s.Require().NoError(err)
	game, err = s.controller.Play(s.ctx, "1234", "carol", set(card(model.Rank9, model.SuitClubs)))
	s.Require().NoError(err)
	s.Equal("dan", game.CurrentPlayer().Name)

	// Dan and bob cannot beat the nine; carol leads again and goes out
	game, err = s.controller.Pass(s.ctx, "1234", "dan")
	s.Require().NoError(err)
	game, err = s.controller.Pass(s.ctx, "1234", "bob")
	s.Require().NoError(err)
	s.Empty(game.CurrentSet)
	s.Equal("carol", game.CurrentPlayer().Name)

	game, err = s.controller.Play(s.ctx, "1234", "carol", set(card(model.Rank9, model.SuitHearts)))
	s.Require().NoError(err)
	s.Equal([]string{"alice", "carol"}, game.PlayerRankings)

	// Only bob and dan remain; dan wins the lead when everyone passes
	game, err = s.controller.Pass(s.ctx, "1234", "dan")
	s.Require().NoError(err)
	game, err = s.controller.Pass(s.ctx, "1234", "bob")
	s.Require().NoError(err)
	s.Equal("dan", game.CurrentPlayer().Name)

	game, err = s.controller.Play(s.ctx, "1234", "dan", set(card(model.Rank4, model.SuitClubs)))
	s.Require().NoError(err)
	game, err = s.controller.Play(s.ctx, "1234", "bob", set(card(model.Rank6, model.SuitHearts)))
	s.Require().NoError(err)

	s.True(game.Finished)
	s.Equal([]string{"alice", "carol", "bob", "dan"}, game.PlayerRankings)
	s.Equal(model.RolePresident, game.GetPlayer("alice").Role)
	s.Equal(model.RoleVicePresident, game.GetPlayer("carol").Role)
	s.Equal(model.RoleViceBum, game.GetPlayer("bob").Role)
	s.Equal(model.RoleBum, game.GetPlayer("dan").Role)
	s.Contains(game.GameUpdate, "alice is the president")
}
