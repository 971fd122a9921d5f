package suit

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Suit int

const (
	// None marks the absence of a suit, e.g. no announcement on the pile.
	None Suit = iota
	Clubs
	Diamonds
	Hearts
	Spades
)

var All = []Suit{Clubs, Diamonds, Hearts, Spades}

type suitInfo struct {
	name          string
	letter        string
	symbol        string
	colorFunction func(...interface{}) string
}

var (
	black = color.New(color.FgHiWhite).SprintFunc()
	red   = color.New(color.FgHiRed).SprintFunc()
)

var suits = map[Suit]suitInfo{
	Clubs:    {name: "Clubs", letter: "C", symbol: "♣", colorFunction: black},
	Diamonds: {name: "Diamonds", letter: "D", symbol: "♦", colorFunction: red},
	Hearts:   {name: "Hearts", letter: "H", symbol: "♥", colorFunction: red},
	Spades:   {name: "Spades", letter: "S", symbol: "♠", colorFunction: black},
}

var Stdout io.Writer = color.Output

func (s Suit) Valid() bool {
	_, ok := suits[s]
	return ok
}

// Letter is the single character used in card identifiers.
func (s Suit) Letter() string {
	return suits[s].letter
}

func (s Suit) Symbol() string {
	return suits[s].symbol
}

func (s Suit) Name() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suits[s].name
}

func (s Suit) Paint(text string) string {
	if !s.Valid() {
		return text
	}
	return suits[s].colorFunction(text)
}

func (s Suit) Paintf(format string, args ...interface{}) string {
	return s.Paint(fmt.Sprintf(format, args...))
}

func (s Suit) String() string {
	return s.Paint(s.Symbol() + " " + s.Name())
}

// ByName accepts a suit's name, letter or symbol, ignoring case.
func ByName(name string) (Suit, error) {
	name = strings.TrimSpace(name)
	for _, s := range All {
		info := suits[s]
		if strings.EqualFold(name, info.name) || strings.EqualFold(name, info.letter) || name == info.symbol {
			return s, nil
		}
	}
	return None, fmt.Errorf("invalid suit '%s'", name)
}
