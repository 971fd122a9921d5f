package game

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
)

type Pile struct {
	cards     []card.Card
	announced suit.Suit
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, DeckSize)}
}

// AcceptACard pushes a card. Any announced suit belonged to the previous top and is dropped.
func (p *Pile) AcceptACard(c card.Card) {
	p.cards = append(p.cards, c)
	p.clearAnnounced()
}

func (p *Pile) clearAnnounced() {
	p.announced = suit.None
}

func (p *Pile) TopCard() (card.Card, bool) {
	if len(p.cards) == 0 {
		return card.Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

func (p *Pile) RemoveTopCard() (card.Card, bool) {
	top, ok := p.TopCard()
	if !ok {
		return card.Card{}, false
	}
	p.cards = p.cards[:len(p.cards)-1]
	p.clearAnnounced()
	return top, true
}

func (p *Pile) IsValidToPlay(c card.Card) bool {
	top, ok := p.TopCard()
	if !ok {
		return true
	}
	return Playable(c, top, p.announced)
}

func (p *Pile) SetAnnouncedSuit(s suit.Suit) error {
	if !s.Valid() {
		return ErrInvalidSuit
	}
	top, ok := p.TopCard()
	if !ok || !top.IsEight() {
		return ErrNoEightOnTop
	}
	p.announced = s
	return nil
}

func (p *Pile) AnnouncedSuit() (suit.Suit, bool) {
	return p.announced, p.announced.Valid()
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Size() int {
	return len(p.cards)
}
