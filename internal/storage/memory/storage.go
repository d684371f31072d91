package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/psellars/cardtable/internal/model"
	"github.com/psellars/cardtable/internal/storage"
)

// Storage is an in-memory implementation of the game store. Records are
// deep-copied on the way in and out so callers never share state with the
// store, mirroring the marshalling boundary of the Redis backend.
type Storage struct {
	mu    sync.RWMutex
	games map[model.GameCode]*model.Game
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games: make(map[model.GameCode]*model.Game),
	}
}

// Ensure Storage implements the interface
var _ storage.GameStore = (*Storage)(nil)

func cloneGame(g *model.Game) *model.Game {
	data, err := json.Marshal(g)
	if err != nil {
		return nil
	}
	var out model.Game
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return &out
}

func (s *Storage) CreateGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[game.Code]; ok {
		return model.ErrGameExists
	}
	s.games[game.Code] = cloneGame(game)
	return nil
}

func (s *Storage) GetGame(ctx context.Context, code model.GameCode) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[code]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return cloneGame(game), nil
}

func (s *Storage) UpdateGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.games[game.Code]
	if !ok {
		return model.ErrGameNotFound
	}
	if current.Version != game.Version {
		return model.ErrVersionConflict
	}
	game.Version++
	s.games[game.Code] = cloneGame(game)
	return nil
}

func (s *Storage) DeleteGame(ctx context.Context, code model.GameCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, code)
	return nil
}

func (s *Storage) GameExists(ctx context.Context, code model.GameCode) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.games[code]
	return ok, nil
}
