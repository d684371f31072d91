package cli

import (
	"fmt"
	"strings"
)

var validRanks = map[string]string{
	"2": "2", "3": "3", "4": "4", "5": "5", "6": "6", "7": "7",
	"8": "8", "9": "9", "10": "10", "J": "J", "Q": "Q", "K": "K", "A": "A",
}

var suitLetters = map[string]string{
	"H": "hearts",
	"D": "diamonds",
	"C": "clubs",
	"S": "spades",
}

var suitSymbols = map[string]string{
	"hearts":   "♥",
	"diamonds": "♦",
	"clubs":    "♣",
	"spades":   "♠",
}

var gameTypeAliases = map[string]string{
	"gofish":      "goFish",
	"crazyeights": "crazyEights",
	"eights":      "crazyEights",
	"president":   "president",
}

// parseGameType maps user-facing game names onto the wire identifiers
func parseGameType(arg string) (string, error) {
	gameType, ok := gameTypeAliases[strings.ToLower(strings.TrimSpace(arg))]
	if !ok {
		return "", fmt.Errorf("unknown game type %q: use gofish, crazyeights or president", arg)
	}
	return gameType, nil
}

// parseCard parses shorthand like "QS", "10h" or "q-spades" into a wire card
func parseCard(arg string) (Card, error) {
	s := strings.ToUpper(strings.TrimSpace(arg))
	s = strings.ReplaceAll(s, "-", "")

	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card %q: use rank+suit, e.g. QS or 10H", arg)
	}

	rankPart := s[:len(s)-1]
	suitPart := s[len(s)-1:]

	// Allow the long suit form too, e.g. "QSPADES"
	for letter, name := range suitLetters {
		if strings.HasSuffix(s, strings.ToUpper(name)) {
			rankPart = strings.TrimSuffix(s, strings.ToUpper(name))
			suitPart = letter
			break
		}
	}

	rank, ok := validRanks[rankPart]
	if !ok {
		return Card{}, fmt.Errorf("invalid rank %q: use 2-10, J, Q, K or A", rankPart)
	}

	suit, ok := suitLetters[suitPart]
	if !ok {
		return Card{}, fmt.Errorf("invalid suit %q: use H, D, C or S", suitPart)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// parseCards parses a list of shorthand card arguments
func parseCards(args []string) ([]Card, error) {
	cards := make([]Card, 0, len(args))
	for _, arg := range args {
		card, err := parseCard(arg)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// parseSuit parses a suit name or letter into the wire form
func parseSuit(arg string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(arg))
	if _, ok := suitSymbols[s]; ok {
		return s, nil
	}
	if name, ok := suitLetters[strings.ToUpper(s)]; ok {
		return name, nil
	}
	return "", fmt.Errorf("invalid suit %q: use hearts, diamonds, clubs or spades", arg)
}

// parseRank validates a rank argument
func parseRank(arg string) (string, error) {
	rank, ok := validRanks[strings.ToUpper(strings.TrimSpace(arg))]
	if !ok {
		return "", fmt.Errorf("invalid rank %q: use 2-10, J, Q, K or A", arg)
	}
	return rank, nil
}

// formatCard renders a card compactly, e.g. "Q♠"
func formatCard(c Card) string {
	symbol, ok := suitSymbols[c.Suit]
	if !ok {
		symbol = "?"
	}
	return c.Rank + symbol
}

func formatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = formatCard(c)
	}
	return strings.Join(parts, " ")
}
