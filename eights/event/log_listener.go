package event

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
)

// LogListener writes engine notifications to the server log, tagged with the session.
type LogListener struct {
	session string
}

func NewLogListener(session string) LogListener {
	return LogListener{session: session}
}

func (l LogListener) HandUpdated(seat game.Seat, cards []card.Card) {
	log.Infof("[%s] %s hand now holds %d card(s)\n", l.session, seat, len(cards))
}

func (l LogListener) PileTopChanged(top card.Card) {
	log.Infof("[%s] pile top %s\n", l.session, top.ID())
}

func (l LogListener) SuitAnnounced(seat game.Seat, announced suit.Suit) {
	log.Infof("[%s] %s announced %s\n", l.session, seat, announced.Name())
}

func (l LogListener) PromptSuitSelection() {
	log.Infof("[%s] waiting for suit selection\n", l.session)
}

func (l LogListener) DeckReshuffled(top card.Card, deckSize int) {
	log.Infof("[%s] deck reshuffled, %d card(s) under %s\n", l.session, deckSize, top.ID())
}

func (l LogListener) WinnerAnnounced(winner game.Seat) {
	log.Infof("[%s] %s wins\n", l.session, winner)
}

func (l LogListener) InvalidMoveRejected(reason error) {
	log.Infof("[%s] rejected: %v\n", l.session, reason)
}
