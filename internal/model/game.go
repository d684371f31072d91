package model

import "time"

// GameCode is the short numeric room code identifying a game session
type GameCode string

// GameType selects which rules engine drives a session. Fixed at creation.
type GameType string

const (
	GameGoFish      GameType = "goFish"
	GameCrazyEights GameType = "crazyEights"
	GamePresident   GameType = "president"
)

// MaxPlayersFor returns the player cap for a game type, or 0 for an
// unrecognized type.
func MaxPlayersFor(t GameType) int {
	switch t {
	case GameGoFish, GameCrazyEights, GamePresident:
		return 6
	default:
		return 0
	}
}

// MinPlayers is the minimum roster size to start any game
const MinPlayers = 2

// TurnState is the Go Fish per-turn sub-state
type TurnState string

const (
	// TurnChoosingCard - the actor picks an opponent and a rank to ask for
	TurnChoosingCard TurnState = "choosingCard"
	// TurnFishing - the ask missed, the actor must draw from the pond
	TurnFishing TurnState = "fishing"
	// TurnFishingToStart - the actor's hand is empty, they must draw before asking
	TurnFishingToStart TurnState = "fishingToStart"
)

// MoveKind tags the most recent resolved move for presentation layers
type MoveKind string

const (
	MovePlayCard MoveKind = "playCard"
	MovePickUp   MoveKind = "pickUp"
	MoveBurnCard MoveKind = "burnCard"
)

// Move is the (actor, kind) pair recorded on the game so observers can tell
// which change just happened. Nil when the last transition should not be
// acknowledged.
type Move struct {
	PlayerName string   `json:"playerName"`
	Kind       MoveKind `json:"kind"`
}

// Game is the single shared record for one session. All engine operations
// compute a complete next record from it; the store applies writes
// conditionally on Version.
type Game struct {
	Code    GameCode `json:"code"`
	Type    GameType `json:"game"`
	Version int64    `json:"version"`

	// Players in join order; join order is turn rotation order
	Players []Player `json:"players"`
	// Turn indexes Players for whose move is expected next
	Turn int `json:"turn"`
	// Pond is the undealt card stack, drawn from the tail
	Pond []Card `json:"pond"`

	Started  bool `json:"started"`
	Finished bool `json:"finished"`

	// PlayerRankings is the order in which players emptied their hands
	// (Go Fish: by pairs, filled in at game end)
	PlayerRankings []string `json:"playerRankings"`
	// GameUpdate is a human-readable status line
	GameUpdate string `json:"gameUpdate"`
	// LastMove signals "this actor just did X" to observers
	LastMove *Move `json:"mostRecentMove,omitempty"`

	// Crazy Eights
	CurrentCard  *Card  `json:"currentCard,omitempty"`
	CardsPlayed  []Card `json:"cardsPlayed,omitempty"`
	ToPickUp     int    `json:"toPickUp,omitempty"`
	ChoosingSuit bool   `json:"choosingSuit,omitempty"`

	// Go Fish
	TurnState TurnState `json:"turnState,omitempty"`
	AskedRank Rank      `json:"askedRank,omitempty"`

	// President
	CurrentSet      []Card `json:"currentSet,omitempty"`
	Burning         bool   `json:"burning,omitempty"`
	LastPlayer      int    `json:"lastPlayer,omitempty"`
	PresPassedCards bool   `json:"presPassedCards,omitempty"`
	VicePassedCards bool   `json:"vicePassedCards,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PlayerIndex returns the index of the named player, or -1
func (g *Game) PlayerIndex(name string) int {
	for i := range g.Players {
		if g.Players[i].Name == name {
			return i
		}
	}
	return -1
}

// GetPlayer returns the named player, or nil
func (g *Game) GetPlayer(name string) *Player {
	idx := g.PlayerIndex(name)
	if idx == -1 {
		return nil
	}
	return &g.Players[idx]
}

// CurrentPlayer returns the player whose move is expected next
func (g *Game) CurrentPlayer() *Player {
	return &g.Players[g.Turn]
}

// ActiveCount returns the number of players still holding cards
func (g *Game) ActiveCount() int {
	n := 0
	for i := range g.Players {
		if g.Players[i].HasHand() {
			n++
		}
	}
	return n
}

// FindByRole returns the index of the first player with the given President
// role, or -1
func (g *Game) FindByRole(role Role) int {
	for i := range g.Players {
		if g.Players[i].Role == role {
			return i
		}
	}
	return -1
}
