package event

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
)

type HandUpdatedPayload struct {
	Seat  game.Seat
	Cards []card.Card
}

type PileTopChangedPayload struct {
	Card card.Card
}

type SuitAnnouncedPayload struct {
	Seat game.Seat
	Suit suit.Suit
}

type SuitSelectionPromptedPayload struct{}

type DeckReshuffledPayload struct {
	Top      card.Card
	DeckSize int
}

type WinnerAnnouncedPayload struct {
	Winner game.Seat
}

type InvalidMoveRejectedPayload struct {
	Reason error
}
