package storage

import (
	"context"

	"github.com/psellars/cardtable/internal/model"
)

// GameStore is the persistence boundary for the shared game record. There is
// exactly one record per session; engines read it, compute a complete next
// record in memory, and write it back.
//
// UpdateGame is conditional: the write succeeds only if the stored record
// still carries the Version the caller read, and bumps the version on
// success. A stale write fails with model.ErrVersionConflict so the caller
// can re-read and recompute instead of silently dropping a concurrent move.
type GameStore interface {
	// CreateGame stores a new record, failing with model.ErrGameExists if
	// the code is already in use
	CreateGame(ctx context.Context, game *model.Game) error

	// GetGame returns the current record, or model.ErrGameNotFound
	GetGame(ctx context.Context, code model.GameCode) (*model.Game, error)

	// UpdateGame writes the record if game.Version matches the stored
	// version, incrementing game.Version on success. Fails with
	// model.ErrVersionConflict on a stale write and model.ErrGameNotFound
	// if the record was deleted.
	UpdateGame(ctx context.Context, game *model.Game) error

	// DeleteGame removes the record. Deleting a missing record is not an error.
	DeleteGame(ctx context.Context, code model.GameCode) error

	// GameExists reports whether a record exists for the code
	GameExists(ctx context.Context, code model.GameCode) (bool, error)
}
