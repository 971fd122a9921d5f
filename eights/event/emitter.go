package event

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
)

// Emitter fans every notification out to its listeners in registration order.
// Each engine gets its own emitter.
type Emitter struct {
	listeners []game.Display
}

func NewEmitter(listeners ...game.Display) *Emitter {
	return &Emitter{listeners: listeners}
}

func (e *Emitter) AddListener(listener game.Display) {
	e.listeners = append(e.listeners, listener)
}

func (e *Emitter) HandUpdated(seat game.Seat, cards []card.Card) {
	for _, listener := range e.listeners {
		listener.HandUpdated(seat, cards)
	}
}

func (e *Emitter) PileTopChanged(top card.Card) {
	for _, listener := range e.listeners {
		listener.PileTopChanged(top)
	}
}

func (e *Emitter) SuitAnnounced(seat game.Seat, announced suit.Suit) {
	for _, listener := range e.listeners {
		listener.SuitAnnounced(seat, announced)
	}
}

func (e *Emitter) PromptSuitSelection() {
	for _, listener := range e.listeners {
		listener.PromptSuitSelection()
	}
}

func (e *Emitter) DeckReshuffled(top card.Card, deckSize int) {
	for _, listener := range e.listeners {
		listener.DeckReshuffled(top, deckSize)
	}
}

func (e *Emitter) WinnerAnnounced(winner game.Seat) {
	for _, listener := range e.listeners {
		listener.WinnerAnnounced(winner)
	}
}

func (e *Emitter) InvalidMoveRejected(reason error) {
	for _, listener := range e.listeners {
		listener.InvalidMoveRejected(reason)
	}
}
