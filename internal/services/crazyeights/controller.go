// Package crazyeights is the Crazy Eights rules engine: matching rank or
// suit on the face-up card, wild eights that nominate a suit, jacks that
// skip, and stacking pickup penalties for twos and the queen of spades.
package crazyeights

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/psellars/cardtable/internal/dependencies/random"
	"github.com/psellars/cardtable/internal/model"
	"github.com/psellars/cardtable/internal/record"
	"github.com/psellars/cardtable/internal/rules"
)

// Controller drives Crazy Eights sessions
type Controller struct {
	records *record.Adapter
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a Crazy Eights Controller
func NewController(records *record.Adapter, rnd random.Random, logger *slog.Logger) *Controller {
	return &Controller{
		records: records,
		random:  rnd,
		logger:  logger.With(slog.String("component", "crazyeights")),
	}
}

// PlayCard plays one card from the actor's hand onto the pile. An eight is
// wild: it parks the game until the actor nominates a suit with ChooseSuit.
// Jacks skip the next player; twos and the queen of spades add to the pickup
// owed by whoever cannot answer with a two.
func (c *Controller) PlayCard(ctx context.Context, code model.GameCode, playerName string, played model.Card) (*model.Game, error) {
	return c.records.Mutate(ctx, code, func(g *model.Game) ([]model.Event, error) {
		if err := checkMove(g, playerName); err != nil {
			return nil, err
		}
		if g.ChoosingSuit {
			return nil, model.ErrChoosingSuit
		}

		player := g.CurrentPlayer()
		if !player.HoldsCard(played) {
			return nil, model.ErrCardNotHeld
		}
		if !rules.CanPlayEights(played, g.CurrentCard, g.ToPickUp) {
			return nil, model.ErrIllegalPlay
		}

		player.RemoveCard(played)
		g.LastMove = &model.Move{PlayerName: playerName, Kind: model.MovePlayCard}

		events := []model.Event{{
			Type:       model.EventCardPlayed,
			PlayerName: playerName,
			Payload:    model.CardPlayedPayload{Cards: []model.Card{played}},
		}}

		if played.Rank == model.Rank8 {
			// The real eight is buried now; the face-up card becomes a
			// stand-in once the suit is nominated
			g.CardsPlayed = append(g.CardsPlayed, played)
			g.ChoosingSuit = true
			g.GameUpdate = fmt.Sprintf("%s is choosing a suit", playerName)
			return events, nil
		}

		c.coverCurrentCard(g)
		g.CurrentCard = &played
		g.ToPickUp += rules.PenaltyFor(played)

		skip := 0
		if played.Rank == model.RankJ {
			skip = 1
		}

		events = append(events, c.settlePlayer(g, player)...)
		if !g.Finished {
			g.Turn = rules.NextPlayer(g.Players, g.Turn, skip)
			g.GameUpdate = fmt.Sprintf("It's %s's turn", g.CurrentPlayer().Name)
		}
		return events, nil
	})
}

// ChooseSuit nominates the suit a just-played wild eight stands for and
// releases the turn.
func (c *Controller) ChooseSuit(ctx context.Context, code model.GameCode, playerName string, suit model.Suit) (*model.Game, error) {
	return c.records.Mutate(ctx, code, func(g *model.Game) ([]model.Event, error) {
		if err := checkMove(g, playerName); err != nil {
			return nil, err
		}
		if !g.ChoosingSuit {
			return nil, model.ErrNotChoosingSuit
		}

		c.coverCurrentCard(g)
		g.CurrentCard = &model.Card{Rank: model.Rank8, Suit: suit}
		g.ChoosingSuit = false

		events := []model.Event{{
			Type:       model.EventSuitChosen,
			PlayerName: playerName,
			Payload:    model.SuitChosenPayload{Suit: suit},
		}}

		events = append(events, c.settlePlayer(g, g.CurrentPlayer())...)
		if !g.Finished {
			g.Turn = rules.NextPlayer(g.Players, g.Turn, 0)
			g.GameUpdate = fmt.Sprintf("It's %s's turn", g.CurrentPlayer().Name)
		}
		return events, nil
	})
}

// Draw takes one card from the pond. If the drawn card leaves the actor with
// no legal play, the turn passes; otherwise they keep it and may play.
func (c *Controller) Draw(ctx context.Context, code model.GameCode, playerName string) (*model.Game, error) {
	return c.records.Mutate(ctx, code, func(g *model.Game) ([]model.Event, error) {
		if err := checkMove(g, playerName); err != nil {
			return nil, err
		}
		if g.ChoosingSuit {
			return nil, model.ErrChoosingSuit
		}
		if g.ToPickUp > 0 {
			return nil, model.ErrPickUpOwed
		}

		drawn, err := c.drawFromPond(g, 1)
		if err != nil {
			return nil, err
		}

		player := g.CurrentPlayer()
		player.Hand = append(player.Hand, drawn...)
		g.LastMove = &model.Move{PlayerName: playerName, Kind: model.MovePickUp}

		if !rules.HasPlayableEights(player.Hand, g.CurrentCard, g.ToPickUp) {
			g.Turn = rules.NextPlayer(g.Players, g.Turn, 0)
			g.GameUpdate = fmt.Sprintf("It's %s's turn", g.CurrentPlayer().Name)
		}

		return []model.Event{{
			Type:       model.EventCardDrawn,
			PlayerName: playerName,
		}}, nil
	})
}

// PickUp pays off the accumulated penalty. The payer draws the whole amount
// owed and the turn passes.
func (c *Controller) PickUp(ctx context.Context, code model.GameCode, playerName string) (*model.Game, error) {
	return c.records.Mutate(ctx, code, func(g *model.Game) ([]model.Event, error) {
		if err := checkMove(g, playerName); err != nil {
			return nil, err
		}
		if g.ChoosingSuit {
			return nil, model.ErrChoosingSuit
		}
		if g.ToPickUp == 0 {
			return nil, fmt.Errorf("%w: no pickup is owed", model.ErrIllegalPlay)
		}

		drawn, err := c.drawFromPond(g, g.ToPickUp)
		if err != nil {
			return nil, err
		}
		count := len(drawn)

		player := g.CurrentPlayer()
		player.Hand = append(player.Hand, drawn...)
		g.ToPickUp = 0
		g.LastMove = &model.Move{PlayerName: playerName, Kind: model.MovePickUp}

		g.Turn = rules.NextPlayer(g.Players, g.Turn, 0)
		g.GameUpdate = fmt.Sprintf("%s picked up %d cards", playerName, count)

		return []model.Event{{
			Type:       model.EventPenaltyPaid,
			PlayerName: playerName,
			Payload:    model.PenaltyPaidPayload{Count: count},
		}}, nil
	})
}

// GetGame returns the current record for a session
func (c *Controller) GetGame(ctx context.Context, code model.GameCode) (*model.Game, error) {
	return c.records.Read(ctx, code)
}

func checkMove(g *model.Game, playerName string) error {
	if g.Type != model.GameCrazyEights {
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

// coverCurrentCard buries the face-up card in the played pile. A stand-in
// eight is skipped: the real eight was buried when it was played.
func (c *Controller) coverCurrentCard(g *model.Game) {
	if g.CurrentCard != nil && g.CurrentCard.Rank != model.Rank8 {
		g.CardsPlayed = append(g.CardsPlayed, *g.CurrentCard)
	}
}

// drawFromPond pops up to n cards off the pond tail, restocking from the
// played pile when the pond runs dry. Returns fewer than n only when both
// are exhausted; zero available cards is an error.
func (c *Controller) drawFromPond(g *model.Game, n int) ([]model.Card, error) {
	var drawn []model.Card
	for len(drawn) < n {
		if len(g.Pond) == 0 {
			if len(g.CardsPlayed) == 0 {
				break
			}
			g.Pond = g.CardsPlayed
			g.CardsPlayed = []model.Card{}
			random.Shuffle(c.random, g.Pond)
		}
		drawn = append(drawn, g.Pond[len(g.Pond)-1])
		g.Pond = g.Pond[:len(g.Pond)-1]
	}
	if len(drawn) == 0 {
		return nil, model.ErrEmptyPond
	}
	return drawn, nil
}

// settlePlayer records a player going out and ends the game once only one
// player is left holding cards.
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
