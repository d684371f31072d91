// Package record is the engines' boundary to the shared game record: a
// read-modify-write adapter over a GameStore plus push-based change
// notification. Engine operations stay pure; every side effect against the
// shared record funnels through here.
package record

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/psellars/cardtable/internal/dependencies/clock"
	"github.com/psellars/cardtable/internal/model"
	"github.com/psellars/cardtable/internal/storage"
)

// maxWriteAttempts bounds how often a mutation is recomputed after losing a
// write race before the failure is surfaced to the caller
const maxWriteAttempts = 3

// Update is what subscribers receive on every committed write: the full new
// record plus the discrete events describing the transition.
type Update struct {
	Game   *model.Game
	Events []model.Event
}

// SubscriberFunc receives committed updates. It must not block; slow
// consumers should hand off to their own buffer.
type SubscriberFunc func(Update)

// MutateFunc computes the next record in place and returns the events
// describing the transition. Returning an error aborts the write entirely;
// no partial application is possible.
type MutateFunc func(game *model.Game) ([]model.Event, error)

// Adapter applies engine operations to the shared record with an optimistic
// read-then-write pattern and broadcasts each committed record to all
// subscribers of the session.
type Adapter struct {
	store  storage.GameStore
	clock  clock.Clock
	logger *slog.Logger

	mu     sync.RWMutex
	subs   map[model.GameCode]map[int64]SubscriberFunc
	nextID int64
}

// New creates an Adapter over the given store
func New(store storage.GameStore, clk clock.Clock, logger *slog.Logger) *Adapter {
	return &Adapter{
		store:  store,
		clock:  clk,
		logger: logger.With(slog.String("component", "record")),
		subs:   make(map[model.GameCode]map[int64]SubscriberFunc),
	}
}

// Read returns the current record for a session
func (a *Adapter) Read(ctx context.Context, code model.GameCode) (*model.Game, error) {
	return a.store.GetGame(ctx, code)
}

// Exists reports whether a session exists for the code
func (a *Adapter) Exists(ctx context.Context, code model.GameCode) (bool, error) {
	return a.store.GameExists(ctx, code)
}

// Create stores a brand-new record and notifies subscribers
func (a *Adapter) Create(ctx context.Context, game *model.Game, events ...model.Event) error {
	now := a.clock.Now()
	game.CreatedAt = now
	game.UpdatedAt = now

	if err := a.store.CreateGame(ctx, game); err != nil {
		return err
	}

	a.publish(game, events)
	return nil
}

// Mutate runs fn against the freshest record and commits the result with a
// version-checked write. Losing a write race triggers a re-read and full
// recomputation, up to maxWriteAttempts times, so no concurrent move is
// silently dropped.
func (a *Adapter) Mutate(ctx context.Context, code model.GameCode, fn MutateFunc) (*model.Game, error) {
	var lastErr error

	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		game, err := a.store.GetGame(ctx, code)
		if err != nil {
			return nil, err
		}

		events, err := fn(game)
		if err != nil {
			return nil, err
		}

		game.UpdatedAt = a.clock.Now()

		err = a.store.UpdateGame(ctx, game)
		if err == nil {
			a.publish(game, events)
			return game, nil
		}
		if !errors.Is(err, model.ErrVersionConflict) {
			return nil, err
		}

		lastErr = err
		a.logger.Debug("write race lost, recomputing",
			slog.String("code", string(code)),
			slog.Int("attempt", attempt+1),
		)
	}

	return nil, lastErr
}

// Delete removes the record and notifies subscribers the session is gone
func (a *Adapter) Delete(ctx context.Context, code model.GameCode, events ...model.Event) error {
	if err := a.store.DeleteGame(ctx, code); err != nil {
		return err
	}
	a.publish(&model.Game{Code: code}, events)
	return nil
}

// Subscribe registers fn to receive every committed update for the session.
// The returned function removes the subscription.
func (a *Adapter) Subscribe(code model.GameCode, fn SubscriberFunc) func() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.subs[code] == nil {
		a.subs[code] = make(map[int64]SubscriberFunc)
	}
	a.nextID++
	id := a.nextID
	a.subs[code][id] = fn

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.subs[code], id)
		if len(a.subs[code]) == 0 {
			delete(a.subs, code)
		}
	}
}

// SubscriberCount returns how many subscribers a session currently has
func (a *Adapter) SubscriberCount(code model.GameCode) int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.subs[code])
}

func (a *Adapter) publish(game *model.Game, events []model.Event) {
	now := a.clock.Now()
	for i := range events {
		if events[i].ID == "" {
			events[i].ID = uuid.NewString()
		}
		if events[i].Timestamp.IsZero() {
			events[i].Timestamp = now
		}
		events[i].GameCode = game.Code
	}

	a.mu.RLock()
	fns := make([]SubscriberFunc, 0, len(a.subs[game.Code]))
	for _, fn := range a.subs[game.Code] {
		fns = append(fns, fn)
	}
	a.mu.RUnlock()

	update := Update{Game: game, Events: events}
	for _, fn := range fns {
		fn(update)
	}
}
