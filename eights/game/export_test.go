package game

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
)

// Table describes an arranged mid-game position. Deck and Pile list cards
// bottom to top.
type Table struct {
	Deck      []card.Card
	Pile      []card.Card
	Announced suit.Suit
	Human     []card.Card
	Computer  []card.Card
}

func NewEngineAt(display Display, strategy Strategy, random Random, table Table) *Engine {
	e := &Engine{
		deck:     &Deck{cards: append([]card.Card{}, table.Deck...), random: random},
		pile:     NewPile(),
		human:    NewHand(),
		computer: NewHand(),
		strategy: strategy,
		random:   random,
		display:  display,
		phase:    AwaitingHumanAction,
	}
	for _, c := range table.Pile {
		e.pile.AcceptACard(c)
	}
	if table.Announced.Valid() {
		if err := e.pile.SetAnnouncedSuit(table.Announced); err != nil {
			panic(err)
		}
	}
	for _, c := range table.Human {
		e.human.Add(c)
	}
	for _, c := range table.Computer {
		e.computer.Add(c)
	}
	return e
}

func (e *Engine) UpdateDeck() {
	e.updateDeck()
}
