// Package session manages game lifecycle outside the rules engines: room
// creation with collision-checked codes, the roster, dealing, rematches and
// cancellation.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/psellars/cardtable/internal/dependencies/clock"
	"github.com/psellars/cardtable/internal/dependencies/random"
	"github.com/psellars/cardtable/internal/model"
	"github.com/psellars/cardtable/internal/record"
	"github.com/psellars/cardtable/internal/rules"
)

const (
	// RoomCodeLength is the length of the numeric room code
	RoomCodeLength = 4
	// RoomCodeAttempts bounds code generation; past this the service reports
	// the database as saturated rather than looping forever
	RoomCodeAttempts = 10

	roomCodeAlphabet = "0123456789"
)

// Controller manages session lifecycle operations
type Controller struct {
	records *record.Adapter
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a session Controller
func NewController(records *record.Adapter, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Controller {
	return &Controller{
		records: records,
		clock:   clk,
		random:  rnd,
		logger:  logger.With(slog.String("component", "session")),
	}
}

// CreateGame creates a fresh unstarted session with the creator as its only
// player and returns the new record.
func (c *Controller) CreateGame(ctx context.Context, creatorName string, gameType model.GameType) (*model.Game, error) {
	if model.MaxPlayersFor(gameType) == 0 {
		return nil, model.ErrUnknownGameType
	}

	code, err := c.generateRoomCode(ctx)
	if err != nil {
		return nil, err
	}

	game := &model.Game{
		Code:       code,
		Type:       gameType,
		Players:    []model.Player{newPlayer(creatorName, gameType)},
		Pond:       model.NewDeck(),
		GameUpdate: "Game Starting...",
	}

	switch gameType {
	case model.GameGoFish:
		game.TurnState = model.TurnChoosingCard
	case model.GamePresident:
		// No predecessor ranking to honor on a first game
		game.PresPassedCards = true
		game.VicePassedCards = true
	}

	if err := c.records.Create(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("code", string(code)),
		slog.String("game", string(gameType)),
		slog.String("creator", creatorName),
	)

	return game, nil
}

// generateRoomCode picks short numeric codes until one is unused, giving up
// after RoomCodeAttempts collisions.
func (c *Controller) generateRoomCode(ctx context.Context) (model.GameCode, error) {
	for attempt := 0; attempt < RoomCodeAttempts; attempt++ {
		code := model.GameCode(c.random.String(RoomCodeLength, roomCodeAlphabet))
		exists, err := c.records.Exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", model.ErrRoomCodesExhausted
}

func newPlayer(name string, gameType model.GameType) model.Player {
	p := model.Player{Name: name, Hand: []model.Card{}}
	switch gameType {
	case model.GameGoFish:
		p.PairedCards = []model.Card{}
	case model.GamePresident:
		p.Role = model.RoleNeutral
	}
	return p
}

// GetGame returns the current record for a session
func (c *Controller) GetGame(ctx context.Context, code model.GameCode) (*model.Game, error) {
	return c.records.Read(ctx, code)
}

// JoinGame adds a player to an unstarted session
func (c *Controller) JoinGame(ctx context.Context, code model.GameCode, name string) (*model.Game, error) {
	return c.records.Mutate(ctx, code, func(g *model.Game) ([]model.Event, error) {
		if g.Started {
			return nil, model.ErrGameStarted
		}
		max := model.MaxPlayersFor(g.Type)
		if max == 0 {
			return nil, model.ErrUnknownGameType
		}
		if len(g.Players) >= max {
			return nil, model.ErrGameFull
		}
		if g.PlayerIndex(name) != -1 {
			return nil, model.ErrNameTaken
		}

		g.Players = append(g.Players, newPlayer(name, g.Type))
		return []model.Event{{Type: model.EventPlayerJoined, PlayerName: name}}, nil
	})
}

// LeaveGame removes a player from the roster. An emptied session is deleted.
func (c *Controller) LeaveGame(ctx context.Context, code model.GameCode, name string) error {
	game, err := c.records.Mutate(ctx, code, func(g *model.Game) ([]model.Event, error) {
		idx := g.PlayerIndex(name)
		if idx == -1 {
			return nil, model.ErrPlayerNotFound
		}
		g.Players = append(g.Players[:idx], g.Players[idx+1:]...)
		return []model.Event{{Type: model.EventPlayerLeft, PlayerName: name}}, nil
	})
	if err != nil {
		return err
	}

	if len(game.Players) == 0 {
		return c.records.Delete(ctx, code, model.Event{Type: model.EventGameCancelled})
	}
	return nil
}

// StartGame shuffles, deals per the session's game type and opens play
func (c *Controller) StartGame(ctx context.Context, code model.GameCode) (*model.Game, error) {
	return c.records.Mutate(ctx, code, func(g *model.Game) ([]model.Event, error) {
		if g.Started {
			return nil, model.ErrGameStarted
		}
		if len(g.Players) < model.MinPlayers {
			return nil, model.ErrInsufficientPlayers
		}

		deck := append([]model.Card(nil), g.Pond...)
		random.Shuffle(c.random, deck)

		switch g.Type {
		case model.GameGoFish:
			c.dealGoFish(g, deck)
		case model.GameCrazyEights:
			c.dealCrazyEights(g, deck)
		case model.GamePresident:
			c.dealPresident(g, deck)
		default:
			return nil, model.ErrUnknownGameType
		}

		g.Started = true
		g.Finished = false
		g.LastMove = nil
		g.GameUpdate = fmt.Sprintf("It's %s's turn", g.CurrentPlayer().Name)

		c.logger.Info("game started",
			slog.String("code", string(g.Code)),
			slog.String("game", string(g.Type)),
			slog.Int("player_count", len(g.Players)),
		)

		return []model.Event{{Type: model.EventGameStarted}}, nil
	})
}

func (c *Controller) dealGoFish(g *model.Game, deck []model.Card) {
	handSize := 5
	if len(g.Players) <= 3 {
		handSize = 7
	}

	for i := range g.Players {
		g.Players[i].Hand = deck[:handSize]
		deck = deck[handSize:]
		rules.PairUp(&g.Players[i])
	}
	g.Pond = deck

	g.Turn = c.random.Intn(len(g.Players))
	if g.CurrentPlayer().HasHand() {
		g.TurnState = model.TurnChoosingCard
	} else {
		g.TurnState = model.TurnFishingToStart
	}
	g.AskedRank = ""
}

func (c *Controller) dealCrazyEights(g *model.Game, deck []model.Card) {
	// The starting face-up card may not be a wild eight
	startIdx := 0
	for deck[startIdx].Rank == model.Rank8 {
		startIdx++
	}
	starting := deck[startIdx]
	deck = append(deck[:startIdx], deck[startIdx+1:]...)

	for i := range g.Players {
		g.Players[i].Hand = deck[:8]
		deck = deck[8:]
	}
	g.Pond = deck
	g.CurrentCard = &starting
	g.CardsPlayed = []model.Card{}
	g.ChoosingSuit = false

	// A penalty card on top charges the first player to act
	g.ToPickUp = rules.PenaltyFor(starting)
	g.Turn = c.random.Intn(len(g.Players))
}

func (c *Controller) dealPresident(g *model.Game, deck []model.Card) {
	counts := rules.PresidentDealCounts(len(g.Players))
	startingPlayer := c.random.Intn(len(g.Players))

	for i := range g.Players {
		n := counts[(i+startingPlayer)%len(g.Players)]
		g.Players[i].Hand = deck[:n]
		deck = deck[n:]
		rules.SortPresidentHand(g.Players[i].Hand)
	}
	g.Pond = deck

	if bum := g.FindByRole(model.RoleBum); !g.PresPassedCards && bum >= 0 {
		// An exchange round precedes play: the bum opens once it completes
		g.Turn = bum
	} else {
		g.Turn = g.PlayerIndex(holderOfThreeOfDiamonds(g.Players))
	}
	g.CurrentSet = nil
	g.Burning = false
	g.LastPlayer = g.Turn
}

func holderOfThreeOfDiamonds(players []model.Player) string {
	target := model.Card{Rank: model.Rank3, Suit: model.SuitDiamonds}
	for i := range players {
		if players[i].HoldsCard(target) {
			return players[i].Name
		}
	}
	return players[0].Name
}

// ResetGame reverts a finished session to its unstarted state for a rematch,
// preserving the roster. President keeps the roles earned last game and
// re-arms the card exchange.
func (c *Controller) ResetGame(ctx context.Context, code model.GameCode) (*model.Game, error) {
	return c.records.Mutate(ctx, code, func(g *model.Game) ([]model.Event, error) {
		if !g.Finished {
			return nil, model.ErrGameNotFinished
		}

		g.Started = false
		g.Finished = false
		g.Turn = 0
		g.Pond = model.NewDeck()
		g.PlayerRankings = []string{}
		g.GameUpdate = "Game Starting..."
		g.LastMove = nil

		for i := range g.Players {
			g.Players[i].Hand = []model.Card{}
		}

		switch g.Type {
		case model.GameGoFish:
			for i := range g.Players {
				g.Players[i].NumPairs = 0
				g.Players[i].PairedCards = []model.Card{}
			}
			g.TurnState = model.TurnChoosingCard
			g.AskedRank = ""
		case model.GameCrazyEights:
			g.CurrentCard = nil
			g.CardsPlayed = []model.Card{}
			g.ToPickUp = 0
			g.ChoosingSuit = false
		case model.GamePresident:
			g.CurrentSet = nil
			g.Burning = false
			g.LastPlayer = 0
			g.PresPassedCards = false
			g.VicePassedCards = len(g.Players) <= 3
		}

		return []model.Event{{Type: model.EventGameReset}}, nil
	})
}

// CancelGame removes the session entirely. Clients observing the session
// treat its disappearance as cancellation.
func (c *Controller) CancelGame(ctx context.Context, code model.GameCode) error {
	c.logger.Info("game cancelled", slog.String("code", string(code)))
	return c.records.Delete(ctx, code, model.Event{Type: model.EventGameCancelled})
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, creatorName string, gameType model.GameType) (*model.Game, error)
	GetGame(ctx context.Context, code model.GameCode) (*model.Game, error)
	JoinGame(ctx context.Context, code model.GameCode, name string) (*model.Game, error)
	LeaveGame(ctx context.Context, code model.GameCode, name string) error
	StartGame(ctx context.Context, code model.GameCode) (*model.Game, error)
	ResetGame(ctx context.Context, code model.GameCode) (*model.Game, error)
	CancelGame(ctx context.Context, code model.GameCode) error
}

var _ ControllerInterface = (*Controller)(nil)
