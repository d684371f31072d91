package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/psellars/cardtable/internal/model"
	"github.com/psellars/cardtable/internal/storage"
)

// Storage is a Redis-backed implementation of the game store. Conditional
// updates run under WATCH so a concurrent write to the same session aborts
// the transaction instead of being silently overwritten.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.GameStore = (*Storage)(nil)

func (s *Storage) CreateGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	ok, err := s.client.SetNX(ctx, gameKey(game.Code), data, s.cfg.GameTTL).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrGameExists
	}
	return nil
}

func (s *Storage) GetGame(ctx context.Context, code model.GameCode) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) UpdateGame(ctx context.Context, game *model.Game) error {
	key := gameKey(game.Code)

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return model.ErrGameNotFound
			}
			return err
		}

		var stored model.Game
		if err := json.Unmarshal(data, &stored); err != nil {
			return err
		}
		if stored.Version != game.Version {
			return model.ErrVersionConflict
		}

		next := *game
		next.Version = game.Version + 1
		payload, err := json.Marshal(&next)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, s.cfg.GameTTL)
			return nil
		})
		return err
	}, key)

	if err != nil {
		// The WATCH was invalidated by a concurrent write
		if errors.Is(err, redis.TxFailedErr) {
			return model.ErrVersionConflict
		}
		return err
	}

	game.Version++
	return nil
}

func (s *Storage) DeleteGame(ctx context.Context, code model.GameCode) error {
	return s.client.Del(ctx, gameKey(code)).Err()
}

func (s *Storage) GameExists(ctx context.Context, code model.GameCode) (bool, error) {
	exists, err := s.client.Exists(ctx, gameKey(code)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
