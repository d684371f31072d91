package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameResult:
		o.printGame(v.Game)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Card response type (matches API)
type Card struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

// PlayerView response type
type PlayerView struct {
	Name        string `json:"name"`
	Hand        []Card `json:"hand"`
	NumPairs    int    `json:"numPairs,omitempty"`
	PairedCards []Card `json:"pairedCards,omitempty"`
	Role        string `json:"rank,omitempty"`
}

// GameView response type
type GameView struct {
	Code           string       `json:"code"`
	Type           string       `json:"game"`
	Version        int64        `json:"version"`
	Players        []PlayerView `json:"players"`
	Turn           int          `json:"turn"`
	Pond           []Card       `json:"pond"`
	Started        bool         `json:"started"`
	Finished       bool         `json:"finished"`
	PlayerRankings []string     `json:"playerRankings"`
	GameUpdate     string       `json:"gameUpdate"`
	CurrentCard    *Card        `json:"currentCard,omitempty"`
	ToPickUp       int          `json:"toPickUp,omitempty"`
	ChoosingSuit   bool         `json:"choosingSuit,omitempty"`
	TurnState      string       `json:"turnState,omitempty"`
	AskedRank      string       `json:"askedRank,omitempty"`
	CurrentSet     []Card       `json:"currentSet,omitempty"`
	Burning        bool         `json:"burning,omitempty"`
}

// GameResult wraps the game record response
type GameResult struct {
	Game GameView `json:"game"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGame(g GameView) {
	fmt.Printf("Game: %s (%s)\n", g.Code, g.Type)

	switch {
	case g.Finished:
		fmt.Println("Status: finished")
	case g.Started:
		fmt.Println("Status: in progress")
	default:
		fmt.Println("Status: waiting for players")
	}

	if g.GameUpdate != "" {
		fmt.Printf("Update: %s\n", g.GameUpdate)
	}

	fmt.Printf("Players (%d):\n", len(g.Players))
	for i, p := range g.Players {
		marks := []string{}
		if g.Started && !g.Finished && i == g.Turn {
			marks = append(marks, "to play")
		}
		if p.Role != "" {
			marks = append(marks, p.Role)
		}
		suffix := ""
		if len(marks) > 0 {
			suffix = " [" + strings.Join(marks, ", ") + "]"
		}
		fmt.Printf("  - %s: %d cards", p.Name, len(p.Hand))
		if p.NumPairs > 0 {
			fmt.Printf(", %d pairs", p.NumPairs)
		}
		fmt.Printf("%s\n", suffix)
	}

	if g.Started {
		fmt.Printf("Pond: %d cards\n", len(g.Pond))
	}
	if g.CurrentCard != nil {
		fmt.Printf("Current Card: %s\n", formatCard(*g.CurrentCard))
	}
	if g.ToPickUp > 0 {
		fmt.Printf("To Pick Up: %d\n", g.ToPickUp)
	}
	if g.ChoosingSuit {
		fmt.Println("Choosing Suit: yes")
	}
	if g.TurnState != "" {
		fmt.Printf("Turn State: %s\n", g.TurnState)
	}
	if len(g.CurrentSet) > 0 {
		fmt.Printf("Current Set: %s\n", formatCards(g.CurrentSet))
	}
	if g.Burning {
		fmt.Println("Burn Pending: yes")
	}

	if len(g.PlayerRankings) > 0 {
		fmt.Println("Rankings:")
		for i, name := range g.PlayerRankings {
			fmt.Printf("  %d. %s\n", i+1, name)
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
