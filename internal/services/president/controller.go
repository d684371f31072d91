// Package president is the President rules engine: climbing sets of matching
// ranks, twos that burn the pile, a pass round that re-opens the lead, and
// the pre-round card exchange between the presidency and the bums.
package president

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/psellars/cardtable/internal/model"
	"github.com/psellars/cardtable/internal/record"
	"github.com/psellars/cardtable/internal/rules"
)

// Exchange sizes owed by the winning seats
const (
	PresidentExchangeCount = 2
	ViceExchangeCount      = 1
)

// Controller drives President sessions
type Controller struct {
	records *record.Adapter
	logger  *slog.Logger
}

// NewController creates a President Controller
func NewController(records *record.Adapter, logger *slog.Logger) *Controller {
	return &Controller{
		records: records,
		logger:  logger.With(slog.String("component", "president")),
	}
}

// Play puts a uniform-rank set on the pile. A play that burns the pile keeps
// the turn; the actor clears it with Burn and leads again. Anything else
// passes the turn to the next player still holding cards.
func (c *Controller) Play(ctx context.Context, code model.GameCode, playerName string, cards []model.Card) (*model.Game, error) {
	return c.records.Mutate(ctx, code, func(g *model.Game) ([]model.Event, error) {
		if err := checkMove(g, playerName); err != nil {
			return nil, err
		}

		if err := rules.ValidatePresidentPlay(cards, g.CurrentSet); err != nil {
			return nil, err
		}

		player := g.CurrentPlayer()
		for _, card := range cards {
			if !player.RemoveCard(card) {
				return nil, model.ErrCardNotHeld
			}
		}

		burn := rules.IsBurn(cards, g.CurrentSet)
		g.CurrentSet = cards
		g.LastPlayer = g.Turn
		g.LastMove = &model.Move{PlayerName: playerName, Kind: model.MovePlayCard}

		events := []model.Event{{
			Type:       model.EventCardPlayed,
			PlayerName: playerName,
			Payload:    model.CardPlayedPayload{Cards: cards},
		}}

		events = append(events, c.settlePlayer(g, player)...)
		if g.Finished {
			g.CurrentSet = nil
			g.Burning = false
			return events, nil
		}

		if burn {
			g.Burning = true
			g.GameUpdate = fmt.Sprintf("%s burned the pile", playerName)
		} else {
			g.Turn = rules.NextPlayer(g.Players, g.Turn, 0)
			g.GameUpdate = fmt.Sprintf("It's %s's turn", g.CurrentPlayer().Name)
		}
		return events, nil
	})
}

// Pass gives up on answering the pending set. Once the pass round wraps back
// past whoever last played, the pile clears and they lead fresh.
func (c *Controller) Pass(ctx context.Context, code model.GameCode, playerName string) (*model.Game, error) {
	return c.records.Mutate(ctx, code, func(g *model.Game) ([]model.Event, error) {
		if err := checkMove(g, playerName); err != nil {
			return nil, err
		}
		if len(g.CurrentSet) == 0 {
			return nil, fmt.Errorf("%w: you cannot pass an open lead", model.ErrIllegalPlay)
		}

		oldTurn := g.Turn
		g.Turn = rules.NextPlayer(g.Players, g.Turn, 0)
		g.LastMove = nil

		events := []model.Event{{
			Type:       model.EventTurnPassed,
			PlayerName: playerName,
		}}

		if rules.EveryonePassed(oldTurn, g.Turn, g.LastPlayer) {
			g.CurrentSet = nil
			g.LastPlayer = g.Turn
			g.GameUpdate = fmt.Sprintf("Everyone passed! It's %s's lead", g.CurrentPlayer().Name)
			events = append(events, model.Event{Type: model.EventPileBurned})
		} else {
			g.GameUpdate = fmt.Sprintf("It's %s's turn", g.CurrentPlayer().Name)
		}
		return events, nil
	})
}

// Burn clears a burned pile. The burner leads again unless the burning play
// emptied their hand, in which case the next player gets the open lead.
func (c *Controller) Burn(ctx context.Context, code model.GameCode, playerName string) (*model.Game, error) {
	return c.records.Mutate(ctx, code, func(g *model.Game) ([]model.Event, error) {
		if err := baseChecks(g); err != nil {
			return nil, err
		}
		if !g.Burning {
			return nil, model.ErrNoBurnPending
		}
		if g.CurrentPlayer().Name != playerName {
			return nil, model.ErrNotPlayerTurn
		}

		g.CurrentSet = nil
		g.Burning = false
		g.LastMove = &model.Move{PlayerName: playerName, Kind: model.MoveBurnCard}

		if !g.CurrentPlayer().HasHand() {
			g.Turn = rules.NextPlayer(g.Players, g.Turn, 0)
		}
		g.LastPlayer = g.Turn
		g.GameUpdate = fmt.Sprintf("It's %s's lead", g.CurrentPlayer().Name)

		return []model.Event{{
			Type:       model.EventPileBurned,
			PlayerName: playerName,
		}}, nil
	})
}

// SwapCards settles one side of the pre-round exchange: the president sends
// two throwaway cards to the bum and receives the bum's two best, the vice
// sends one to the vice-bum for their best. Play opens once every owed
// exchange is settled.
func (c *Controller) SwapCards(ctx context.Context, code model.GameCode, playerName string, give []model.Card) (*model.Game, error) {
	return c.records.Mutate(ctx, code, func(g *model.Game) ([]model.Event, error) {
		if err := baseChecks(g); err != nil {
			return nil, err
		}

		player := g.GetPlayer(playerName)
		if player == nil {
			return nil, model.ErrPlayerNotFound
		}

		var counterRole model.Role
		var want int
		switch player.Role {
		case model.RolePresident:
			if g.PresPassedCards {
				return nil, fmt.Errorf("%w: the president has already exchanged", model.ErrIllegalPlay)
			}
			counterRole, want = model.RoleBum, PresidentExchangeCount
		case model.RoleVicePresident:
			if g.VicePassedCards {
				return nil, fmt.Errorf("%w: the vice-president has already exchanged", model.ErrIllegalPlay)
			}
			counterRole, want = model.RoleViceBum, ViceExchangeCount
		default:
			return nil, model.ErrWrongRole
		}
		if len(give) != want {
			return nil, fmt.Errorf("%w: you must pass exactly %d cards", model.ErrIllegalPlay, want)
		}

		counterIdx := g.FindByRole(counterRole)
		if counterIdx == -1 {
			return nil, model.ErrPlayerNotFound
		}
		counterpart := &g.Players[counterIdx]

		// The counterpart's hand is kept sorted, so their best cards sit at
		// the tail
		best := append([]model.Card(nil), counterpart.Hand[len(counterpart.Hand)-want:]...)
		counterpart.Hand = counterpart.Hand[:len(counterpart.Hand)-want]

		for _, card := range give {
			if !player.RemoveCard(card) {
				return nil, model.ErrCardNotHeld
			}
		}

		player.Hand = append(player.Hand, best...)
		counterpart.Hand = append(counterpart.Hand, give...)
		rules.SortPresidentHand(player.Hand)
		rules.SortPresidentHand(counterpart.Hand)

		switch player.Role {
		case model.RolePresident:
			g.PresPassedCards = true
		case model.RoleVicePresident:
			g.VicePassedCards = true
		}

		if g.PresPassedCards && g.VicePassedCards {
			g.GameUpdate = fmt.Sprintf("It's %s's turn", g.CurrentPlayer().Name)
		} else {
			g.GameUpdate = "Waiting for cards to be exchanged"
		}

		return []model.Event{{
			Type:       model.EventCardsExchanged,
			PlayerName: playerName,
			Payload: model.CardsExchangedPayload{
				WithPlayer: counterpart.Name,
				Count:      want,
			},
		}}, nil
	})
}

// GetGame returns the current record for a session
func (c *Controller) GetGame(ctx context.Context, code model.GameCode) (*model.Game, error) {
	return c.records.Read(ctx, code)
}

func baseChecks(g *model.Game) error {
	if g.Type != model.GamePresident {
		return model.ErrUnknownGameType
	}
	if !g.Started {
		return model.ErrGameNotStarted
	}
	if g.Finished {
		return model.ErrGameFinished
	}
	return nil
}

func checkMove(g *model.Game, playerName string) error {
	if err := baseChecks(g); err != nil {
		return err
	}
	if !g.PresPassedCards || !g.VicePassedCards {
		return model.ErrExchangePending
	}
	if g.Burning {
		return model.ErrWrongTurnState
	}
	if g.CurrentPlayer().Name != playerName {
		return model.ErrNotPlayerTurn
	}
	return nil
}

// settlePlayer records a player going out and, once only one player holds
// cards, finishes the game and seats everyone for the next round.
func (c *Controller) settlePlayer(g *model.Game, player *model.Player) []model.Event {
	if player.HasHand() {
		return nil
	}
	g.PlayerRankings = append(g.PlayerRankings, player.Name)

	if g.ActiveCount() > 1 {
		return nil
	}
	for i := range g.Players {
		if g.Players[i].HasHand() {
			g.PlayerRankings = append(g.PlayerRankings, g.Players[i].Name)
		}
	}
	g.Finished = true
	for i := range g.Players {
		g.Players[i].Role = rules.RoleFor(g.Players[i].Name, g.PlayerRankings)
	}
	g.GameUpdate = fmt.Sprintf("Game over! %s is the president", g.PlayerRankings[0])

	c.logger.Info("game finished",
		slog.String("code", string(g.Code)),
		slog.String("president", g.PlayerRankings[0]),
	)

	return []model.Event{{
		Type:    model.EventGameFinished,
		Payload: model.GameFinishedPayload{Rankings: g.PlayerRankings},
	}}
}
