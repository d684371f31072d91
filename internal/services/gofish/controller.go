// Package gofish is the Go Fish rules engine: asking opponents for ranks,
// fishing from the pond and pairing, until the pond and every hand are empty.
package gofish

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/psellars/cardtable/internal/model"
	"github.com/psellars/cardtable/internal/record"
	"github.com/psellars/cardtable/internal/rules"
)

// Controller drives Go Fish sessions
type Controller struct {
	records *record.Adapter
	logger  *slog.Logger
}

// NewController creates a Go Fish Controller
func NewController(records *record.Adapter, logger *slog.Logger) *Controller {
	return &Controller{
		records: records,
		logger:  logger.With(slog.String("component", "gofish")),
	}
}

// Ask resolves one player asking another for a rank. A hit moves every card
// of that rank to the asker, who pairs up and keeps the turn. A miss sends
// the asker fishing, or passes the turn outright when the pond is dry.
func (c *Controller) Ask(ctx context.Context, code model.GameCode, askerName, targetName string, rank model.Rank) (*model.Game, error) {
	return c.records.Mutate(ctx, code, func(g *model.Game) ([]model.Event, error) {
		if err := checkMove(g, askerName); err != nil {
			return nil, err
		}
		if g.TurnState != model.TurnChoosingCard {
			return nil, model.ErrWrongTurnState
		}

		asker := g.CurrentPlayer()
		target := g.GetPlayer(targetName)
		if target == nil || targetName == askerName {
			return nil, model.ErrPlayerNotFound
		}
		// You may only ask for a rank you hold yourself
		if asker.CountRank(rank) == 0 {
			return nil, model.ErrCardNotHeld
		}

		if target.CountRank(rank) == 0 {
			events := []model.Event{{
				Type:       model.EventWentFishing,
				PlayerName: askerName,
			}}
			if len(g.Pond) == 0 {
				c.finishTurn(g)
			} else {
				g.TurnState = model.TurnFishing
				g.AskedRank = rank
				g.GameUpdate = fmt.Sprintf("Go fish, %s!", askerName)
			}
			return append(events, c.checkGameOver(g)...), nil
		}

		taken := target.RemoveRank(rank)
		asker.Hand = append(asker.Hand, taken...)
		pairs := rules.PairUp(asker)

		g.GameUpdate = fmt.Sprintf("%s took %d cards from %s", askerName, len(taken), targetName)
		events := []model.Event{{
			Type:       model.EventCardsTaken,
			PlayerName: askerName,
			Payload: model.CardsTakenPayload{
				FromPlayer: targetName,
				Rank:       rank,
				Count:      len(taken),
			},
		}}
		if pairs > 0 {
			events = append(events, model.Event{
				Type:       model.EventPairsMade,
				PlayerName: askerName,
				Payload:    model.PairsMadePayload{Pairs: pairs},
			})
		}

		// The asker goes again, fishing first if pairing emptied their hand
		if !asker.HasHand() {
			if len(g.Pond) > 0 {
				g.TurnState = model.TurnFishingToStart
			} else if !rules.GoFishOver(g) {
				c.finishTurn(g)
			}
		}

		return append(events, c.checkGameOver(g)...), nil
	})
}

// Draw takes the top pond card into the actor's hand. A fished wish (drawing
// the rank that was asked for) keeps the turn; otherwise the turn passes.
func (c *Controller) Draw(ctx context.Context, code model.GameCode, playerName string) (*model.Game, error) {
	return c.records.Mutate(ctx, code, func(g *model.Game) ([]model.Event, error) {
		if err := checkMove(g, playerName); err != nil {
			return nil, err
		}
		if g.TurnState != model.TurnFishing && g.TurnState != model.TurnFishingToStart {
			return nil, model.ErrWrongTurnState
		}
		if len(g.Pond) == 0 {
			return nil, model.ErrEmptyPond
		}

		restarting := g.TurnState == model.TurnFishingToStart
		askedRank := g.AskedRank
		g.AskedRank = ""

		drawn := g.Pond[len(g.Pond)-1]
		g.Pond = g.Pond[:len(g.Pond)-1]

		player := g.CurrentPlayer()
		player.Hand = append(player.Hand, drawn)
		pairs := rules.PairUp(player)

		events := []model.Event{{
			Type:       model.EventCardDrawn,
			PlayerName: playerName,
		}}
		if pairs > 0 {
			events = append(events, model.Event{
				Type:       model.EventPairsMade,
				PlayerName: playerName,
				Payload:    model.PairsMadePayload{Pairs: pairs},
			})
		}

		switch {
		case !player.HasHand():
			// The draw paired off immediately; fish again or move on
			if len(g.Pond) > 0 {
				g.TurnState = model.TurnFishingToStart
			} else if !rules.GoFishOver(g) {
				c.finishTurn(g)
			}
		case restarting:
			g.TurnState = model.TurnChoosingCard
			g.GameUpdate = fmt.Sprintf("It's %s's turn", playerName)
		case drawn.Rank == askedRank:
			g.TurnState = model.TurnChoosingCard
			g.GameUpdate = fmt.Sprintf("%s fished their wish!", playerName)
		default:
			c.finishTurn(g)
		}

		return append(events, c.checkGameOver(g)...), nil
	})
}

// GetGame returns the current record for a session
func (c *Controller) GetGame(ctx context.Context, code model.GameCode) (*model.Game, error) {
	return c.records.Read(ctx, code)
}

func checkMove(g *model.Game, playerName string) error {
	if g.Type != model.GameGoFish {
		return model.ErrUnknownGameType
	}
	if !g.Started {
		return model.ErrGameNotStarted
	}
	if g.Finished {
		return model.ErrGameFinished
	}
	if g.CurrentPlayer().Name != playerName {
		return model.ErrNotPlayerTurn
	}
	return nil
}

// finishTurn hands play to the next player. An empty-handed player is still
// up while the pond has cards; they must fish before asking.
func (c *Controller) finishTurn(g *model.Game) {
	g.Turn = rules.NextPlayerFishing(g.Players, g.Turn, len(g.Pond) == 0)
	next := g.CurrentPlayer()
	if next.HasHand() {
		g.TurnState = model.TurnChoosingCard
	} else {
		g.TurnState = model.TurnFishingToStart
	}
	g.GameUpdate = fmt.Sprintf("It's %s's turn", next.Name)
}

// checkGameOver marks the game finished once the pond and every hand are
// empty, ranking players by pairs collected.
func (c *Controller) checkGameOver(g *model.Game) []model.Event {
	if g.Finished || !rules.GoFishOver(g) {
		return nil
	}
	g.Finished = true
	g.PlayerRankings = rules.FishRankings(g.Players)
	g.GameUpdate = fmt.Sprintf("Game over! %s wins", g.PlayerRankings[0])

	c.logger.Info("game finished",
		slog.String("code", string(g.Code)),
		slog.String("winner", g.PlayerRankings[0]),
	)

	return []model.Event{{
		Type:    model.EventGameFinished,
		Payload: model.GameFinishedPayload{Rankings: g.PlayerRankings},
	}}
}
