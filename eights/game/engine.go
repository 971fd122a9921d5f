package game

import (
	"fmt"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
)

const StartingHandSize = 7

type Engine struct {
	deck     *Deck
	pile     *Pile
	human    *Hand
	computer *Hand
	strategy Strategy
	random   Random
	display  Display
	phase    Phase
}

type Option func(*Engine)

func WithRandom(random Random) Option {
	return func(e *Engine) {
		e.random = random
	}
}

// New shuffles until the top card is not an eight, turns one card face up and
// deals both hands, the human's first.
func New(display Display, strategy Strategy, options ...Option) *Engine {
	e := &Engine{
		pile:     NewPile(),
		human:    NewHand(),
		computer: NewHand(),
		strategy: strategy,
		display:  display,
		phase:    AwaitingHumanAction,
	}
	for _, option := range options {
		option(e)
	}
	if e.random == nil {
		e.random = NewRandom(0)
	}
	e.deck = NewDeck(e.random)
	for {
		e.deck.Shuffle()
		if !e.deck.IsTopCardAnEight() {
			break
		}
	}
	first, _ := e.deck.DealACard()
	e.pile.AcceptACard(first)
	for _, hand := range []*Hand{e.human, e.computer} {
		for i := 0; i < StartingHandSize; i++ {
			dealt, _ := e.deck.DealACard()
			hand.Add(dealt)
		}
	}
	return e
}

// Start shows the opening table.
func (e *Engine) Start() {
	top, _ := e.pile.TopCard()
	e.display.PileTopChanged(top)
	e.display.HandUpdated(Computer, e.computer.Cards())
	e.display.HandUpdated(Human, e.human.Cards())
}

func (e *Engine) Deck() *Deck {
	return e.deck
}

func (e *Engine) Pile() *Pile {
	return e.pile
}

func (e *Engine) Human() *Hand {
	return e.human
}

func (e *Engine) Computer() *Hand {
	return e.computer
}

func (e *Engine) Phase() Phase {
	return e.phase
}

func (e *Engine) Over() bool {
	return e.phase.Over()
}

func (e *Engine) Winner() (Seat, bool) {
	switch e.phase {
	case HumanWins:
		return Human, true
	case ComputerWins:
		return Computer, true
	default:
		return 0, false
	}
}

func (e *Engine) Difficulty() Difficulty {
	return e.strategy.Difficulty()
}

func (e *Engine) SetStrategy(strategy Strategy) {
	e.strategy = strategy
}

func (e *Engine) State() State {
	top, _ := e.pile.TopCard()
	announced, _ := e.pile.AnnouncedSuit()
	return State{
		Phase:            e.phase,
		Difficulty:       e.strategy.Difficulty(),
		PileTop:          top,
		AnnouncedSuit:    announced,
		HumanHand:        e.human.Cards(),
		PlayableCards:    e.human.PlayableCards(e.pile),
		ComputerHandSize: e.computer.Size(),
		DeckSize:         e.deck.Size(),
		PileSize:         e.pile.Size(),
	}
}

// DrawCard ends the human's turn with one card drawn.
func (e *Engine) DrawCard() error {
	if err := e.expect(AwaitingHumanAction); err != nil {
		return err
	}
	e.draw(Human, e.human)
	e.playComputer()
	return nil
}

// PlayCard plays the card identified by id from the human's hand. A rejected
// card leaves the turn with the human.
func (e *Engine) PlayCard(id string) error {
	if err := e.expect(AwaitingHumanAction); err != nil {
		return err
	}
	played, found := e.human.Find(id)
	if !found {
		return e.reject(fmt.Errorf("%w: %s", ErrUnknownCard, id))
	}
	if !e.pile.IsValidToPlay(played) {
		top, _ := e.pile.TopCard()
		return e.reject(fmt.Errorf("%w: %s does not follow %s", ErrInvalidMove, played, top))
	}
	e.human.RemoveCard(played)
	e.display.HandUpdated(Human, e.human.Cards())
	e.pile.AcceptACard(played)
	e.display.PileTopChanged(played)
	e.refillDeck()
	if played.IsEight() {
		e.phase = AwaitingSuitSelection
		e.display.PromptSuitSelection()
		return nil
	}
	if e.human.Empty() {
		e.finish(HumanWins)
		return nil
	}
	e.playComputer()
	return nil
}

// ContinueGameAfterSuitSelection resumes the turn suspended by a human eight.
func (e *Engine) ContinueGameAfterSuitSelection(announced suit.Suit) error {
	if err := e.expect(AwaitingSuitSelection); err != nil {
		return err
	}
	if err := e.pile.SetAnnouncedSuit(announced); err != nil {
		return e.reject(err)
	}
	e.display.SuitAnnounced(Human, announced)
	if e.human.Empty() {
		e.finish(HumanWins)
		return nil
	}
	e.refillDeck()
	e.phase = AwaitingHumanAction
	e.playComputer()
	return nil
}

func (e *Engine) expect(phase Phase) error {
	if e.phase.Over() {
		return ErrGameOver
	}
	if e.phase != phase {
		return fmt.Errorf("%w: %s", ErrWrongPhase, e.phase)
	}
	return nil
}

func (e *Engine) reject(err error) error {
	e.display.InvalidMoveRejected(err)
	return err
}

func (e *Engine) finish(phase Phase) {
	e.phase = phase
	winner, _ := e.Winner()
	e.display.WinnerAnnounced(winner)
}

func (e *Engine) playComputer() {
	move := e.strategy.ChooseMove(e.computer.Cards(), e.pile, e.random)
	if played, ok := e.takeComputerCard(move); ok {
		e.pile.AcceptACard(played)
		e.display.PileTopChanged(played)
		if played.IsEight() {
			_ = e.pile.SetAnnouncedSuit(played.Suit())
			e.display.SuitAnnounced(Computer, played.Suit())
		}
		e.display.HandUpdated(Computer, e.computer.Cards())
		if e.computer.Empty() {
			e.finish(ComputerWins)
			return
		}
	} else {
		e.draw(Computer, e.computer)
	}
	e.refillDeck()
}

// takeComputerCard removes the chosen card once the pile has accepted it.
func (e *Engine) takeComputerCard(move Move) (card.Card, bool) {
	if move.Draw || !e.pile.IsValidToPlay(move.Card) {
		return card.Card{}, false
	}
	index := move.Index
	if index < 0 || index >= e.computer.Size() || !e.computer.cards[index].Equal(move.Card) {
		index = e.computer.IndexOf(move.Card)
	}
	return e.computer.Remove(index)
}

func (e *Engine) draw(seat Seat, hand *Hand) {
	e.refillDeck()
	drawn, err := e.deck.DealACard()
	if err != nil {
		// every other card is in a hand; the turn passes without a draw
		return
	}
	hand.Add(drawn)
	e.display.HandUpdated(seat, hand.Cards())
	e.refillDeck()
}

func (e *Engine) refillDeck() {
	if e.deck.Empty() && e.pile.Size() > 1 {
		e.updateDeck()
	}
}

// updateDeck recycles every pile card except the top into the deck.
func (e *Engine) updateDeck() {
	announced, hasAnnounced := e.pile.AnnouncedSuit()
	top, ok := e.pile.RemoveTopCard()
	if !ok {
		return
	}
	recycled := make([]card.Card, 0, e.pile.Size())
	for e.pile.Size() > 0 {
		c, _ := e.pile.RemoveTopCard()
		recycled = append(recycled, c)
	}
	e.pile.AcceptACard(top)
	if hasAnnounced {
		_ = e.pile.SetAnnouncedSuit(announced)
	}
	e.deck.Replace(recycled)
	e.display.DeckReshuffled(top, e.deck.Size())
}
