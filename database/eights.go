package database

import (
	"fmt"

	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/event"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/eights/msg"
	"github.com/ratel-online/eights/eights/player"
)

type Writer interface {
	WriteString(data string) error
}

// Eights is the game a session plays against the computer.
type Eights struct {
	Engine *game.Engine
}

func NewEights(out Writer, session string, difficulty game.Difficulty, seed int64) (*Eights, error) {
	strategy, err := player.NewStrategy(difficulty)
	if err != nil {
		return nil, fmt.Errorf("%w%w", consts.ErrorsDifficultyInvalid, err)
	}
	emitter := event.NewEmitter(NewEightsDisplay(out), event.NewLogListener(session))
	engine := game.New(emitter, strategy, game.WithRandom(game.NewRandom(seed)))
	return &Eights{Engine: engine}, nil
}

// EightsDisplay writes every notification to the session as text.
type EightsDisplay struct {
	out Writer
}

func NewEightsDisplay(out Writer) EightsDisplay {
	return EightsDisplay{out: out}
}

func (d EightsDisplay) HandUpdated(seat game.Seat, cards []card.Card) {
	_ = d.out.WriteString(msg.Message.HandUpdated(seat, cards))
}

func (d EightsDisplay) PileTopChanged(top card.Card) {
	_ = d.out.WriteString(msg.Message.PileTopChanged(top))
}

func (d EightsDisplay) SuitAnnounced(seat game.Seat, announced suit.Suit) {
	_ = d.out.WriteString(msg.Message.SuitAnnounced(seat, announced))
}

// PromptSuitSelection is answered by the game loop, which asks for the suit.
func (d EightsDisplay) PromptSuitSelection() {}

func (d EightsDisplay) DeckReshuffled(top card.Card, deckSize int) {
	_ = d.out.WriteString(msg.Message.DeckReshuffled(top, deckSize))
}

func (d EightsDisplay) WinnerAnnounced(winner game.Seat) {
	_ = d.out.WriteString(msg.Message.WinnerFound(winner))
}

func (d EightsDisplay) InvalidMoveRejected(reason error) {
	_ = d.out.WriteString(msg.Message.InvalidMove(reason))
}
