// Package factory wires the application together: storage, the record
// adapter, and the session and engine controllers.
package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/psellars/cardtable/internal/dependencies/clock"
	"github.com/psellars/cardtable/internal/dependencies/random"
	"github.com/psellars/cardtable/internal/record"
	"github.com/psellars/cardtable/internal/services/crazyeights"
	"github.com/psellars/cardtable/internal/services/gofish"
	"github.com/psellars/cardtable/internal/services/president"
	"github.com/psellars/cardtable/internal/services/session"
	"github.com/psellars/cardtable/internal/storage"
	"github.com/psellars/cardtable/internal/storage/memory"
	redisstorage "github.com/psellars/cardtable/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.GameStore

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Record adapter and controllers
	Records             *record.Adapter
	SessionController   *session.Controller
	GoFishController    *gofish.Controller
	EightsController    *crazyeights.Controller
	PresidentController *president.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.GameStore
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.GameStore, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	records := record.New(store, clk, logger)

	return &App{
		Storage:             store,
		Clock:               clk,
		Random:              rnd,
		Records:             records,
		SessionController:   session.NewController(records, clk, rnd, logger),
		GoFishController:    gofish.NewController(records, logger),
		EightsController:    crazyeights.NewController(records, rnd, logger),
		PresidentController: president.NewController(records, logger),
	}
}
