package event

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
)

// Recorder keeps every payload it receives.
type Recorder struct {
	receivedPayloads []interface{}
}

func NewRecorder() *Recorder {
	return &Recorder{receivedPayloads: make([]interface{}, 0)}
}

func (r *Recorder) ReceivedPayloads() []interface{} {
	return r.receivedPayloads
}

func (r *Recorder) Reset() {
	r.receivedPayloads = r.receivedPayloads[:0]
}

func (r *Recorder) HandUpdated(seat game.Seat, cards []card.Card) {
	r.receivedPayloads = append(r.receivedPayloads, HandUpdatedPayload{Seat: seat, Cards: cards})
}

func (r *Recorder) PileTopChanged(top card.Card) {
	r.receivedPayloads = append(r.receivedPayloads, PileTopChangedPayload{Card: top})
}

func (r *Recorder) SuitAnnounced(seat game.Seat, announced suit.Suit) {
	r.receivedPayloads = append(r.receivedPayloads, SuitAnnouncedPayload{Seat: seat, Suit: announced})
}

func (r *Recorder) PromptSuitSelection() {
	r.receivedPayloads = append(r.receivedPayloads, SuitSelectionPromptedPayload{})
}

func (r *Recorder) DeckReshuffled(top card.Card, deckSize int) {
	r.receivedPayloads = append(r.receivedPayloads, DeckReshuffledPayload{Top: top, DeckSize: deckSize})
}

func (r *Recorder) WinnerAnnounced(winner game.Seat) {
	r.receivedPayloads = append(r.receivedPayloads, WinnerAnnouncedPayload{Winner: winner})
}

func (r *Recorder) InvalidMoveRejected(reason error) {
	r.receivedPayloads = append(r.receivedPayloads, InvalidMoveRejectedPayload{Reason: reason})
}

// Winners lists the winners announced so far.
func (r *Recorder) Winners() []game.Seat {
	var winners []game.Seat
	for _, payload := range r.receivedPayloads {
		if announced, ok := payload.(WinnerAnnouncedPayload); ok {
			winners = append(winners, announced.Winner)
		}
	}
	return winners
}

func (r *Recorder) Rejections() []error {
	var reasons []error
	for _, payload := range r.receivedPayloads {
		if rejected, ok := payload.(InvalidMoveRejectedPayload); ok {
			reasons = append(reasons, rejected.Reason)
		}
	}
	return reasons
}

func (r *Recorder) SuitPrompts() int {
	prompts := 0
	for _, payload := range r.receivedPayloads {
		if _, ok := payload.(SuitSelectionPromptedPayload); ok {
			prompts++
		}
	}
	return prompts
}
