package game

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
)

// Display is notified of every state change. It must not call back into the
// engine from inside a notification.
type Display interface {
	HandUpdated(seat Seat, cards []card.Card)
	PileTopChanged(top card.Card)
	SuitAnnounced(seat Seat, announced suit.Suit)
	PromptSuitSelection()
	DeckReshuffled(top card.Card, deckSize int)
	WinnerAnnounced(winner Seat)
	InvalidMoveRejected(reason error)
}
