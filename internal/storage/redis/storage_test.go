package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/psellars/cardtable/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.GameTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) newGame(code model.GameCode) *model.Game {
	return &model.Game{
		Code: code,
		Type: model.GamePresident,
		Players: []model.Player{
			{Name: "alice", Role: model.RoleNeutral},
			{Name: "bob", Role: model.RoleNeutral},
		},
	}
}

func (s *StorageSuite) TestCreateAndGetGame() {
	game := s.newGame("0042")

	err := s.storage.CreateGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "0042")
	s.Require().NoError(err)
	s.Equal(model.GamePresident, retrieved.Type)
	s.Len(retrieved.Players, 2)
	s.Equal("alice", retrieved.Players[0].Name)
}

func (s *StorageSuite) TestCreateDuplicateFails() {
	s.Require().NoError(s.storage.CreateGame(s.ctx, s.newGame("0042")))

	err := s.storage.CreateGame(s.ctx, s.newGame("0042"))
	s.ErrorIs(err, model.ErrGameExists)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "9999")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestGameHasTTL() {
	s.Require().NoError(s.storage.CreateGame(s.ctx, s.newGame("0042")))

	ttl := s.mini.TTL(gameKey("0042"))
	s.True(ttl > 0, "game record should have a TTL")
}

func (s *StorageSuite) TestUpdateBumpsVersion() {
	game := s.newGame("0042")
	s.Require().NoError(s.storage.CreateGame(s.ctx, game))

	game.Started = true
	err := s.storage.UpdateGame(s.ctx, game)
	s.Require().NoError(err)
	s.Equal(int64(1), game.Version)

	retrieved, err := s.storage.GetGame(s.ctx, "0042")
	s.Require().NoError(err)
	s.Equal(int64(1), retrieved.Version)
	s.True(retrieved.Started)
}

func (s *StorageSuite) TestStaleUpdateRejected() {
	game := s.newGame("0042")
	s.Require().NoError(s.storage.CreateGame(s.ctx, game))

	first, err := s.storage.GetGame(s.ctx, "0042")
	s.Require().NoError(err)
	second, err := s.storage.GetGame(s.ctx, "0042")
	s.Require().NoError(err)

	first.Turn = 1
	s.Require().NoError(s.storage.UpdateGame(s.ctx, first))

	second.Turn = 0
	err = s.storage.UpdateGame(s.ctx, second)
	s.ErrorIs(err, model.ErrVersionConflict)

	retrieved, err := s.storage.GetGame(s.ctx, "0042")
	s.Require().NoError(err)
	s.Equal(1, retrieved.Turn)
}

func (s *StorageSuite) TestUpdateMissingGameFails() {
	err := s.storage.UpdateGame(s.ctx, s.newGame("9999"))
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteGame() {
	s.Require().NoError(s.storage.CreateGame(s.ctx, s.newGame("0042")))
	s.Require().NoError(s.storage.DeleteGame(s.ctx, "0042"))

	exists, err := s.storage.GameExists(s.ctx, "0042")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *StorageSuite) TestRoundTripPreservesCards() {
	game := s.newGame("0042")
	game.Pond = model.NewDeck()
	game.CurrentCard = &model.Card{Rank: model.RankQ, Suit: model.SuitSpades}
	s.Require().NoError(s.storage.CreateGame(s.ctx, game))

	retrieved, err := s.storage.GetGame(s.ctx, "0042")
	s.Require().NoError(err)
	s.Len(retrieved.Pond, 52)
	s.Require().NotNil(retrieved.CurrentCard)
	s.True(retrieved.CurrentCard.IsQueenOfSpades())
}
