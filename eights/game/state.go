package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
)

type Phase int

const (
	AwaitingHumanAction Phase = iota + 1
	AwaitingSuitSelection
	HumanWins
	ComputerWins
)

func (p Phase) String() string {
	switch p {
	case AwaitingHumanAction:
		return "awaiting human action"
	case AwaitingSuitSelection:
		return "awaiting suit selection"
	case HumanWins:
		return "human wins"
	case ComputerWins:
		return "computer wins"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

func (p Phase) Over() bool {
	return p == HumanWins || p == ComputerWins
}

// State is a read-only snapshot of what the human is allowed to see.
type State struct {
	Phase            Phase
	Difficulty       Difficulty
	PileTop          card.Card
	AnnouncedSuit    suit.Suit
	HumanHand        []card.Card
	PlayableCards    []card.Card
	ComputerHandSize int
	DeckSize         int
	PileSize         int
}

func (s State) String() string {
	var lines []string
	top := s.PileTop.String()
	if s.AnnouncedSuit.Valid() {
		top = fmt.Sprintf("%s (announced %s)", top, s.AnnouncedSuit)
	}
	lines = append(lines, fmt.Sprintf("Pile: %s", top))
	lines = append(lines, fmt.Sprintf("Deck: %d card(s), computer (%s): %d card(s)", s.DeckSize, s.Difficulty, s.ComputerHandSize))
	lines = append(lines, fmt.Sprintf("Your hand: %s", s.HumanHand))
	return strings.Join(lines, "\n")
}
