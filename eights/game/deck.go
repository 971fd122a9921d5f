package game

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
)

const DeckSize = 52

// Deck is a stack: the top card is the last element.
type Deck struct {
	cards  []card.Card
	random Random
}

func NewDeck(random Random) *Deck {
	deck := &Deck{random: random}
	fillDeck(deck)
	return deck
}

func fillDeck(deck *Deck) {
	cards := make([]card.Card, 0, DeckSize)
	for _, s := range suit.All {
		for _, rank := range card.Ranks {
			cards = append(cards, card.New(rank, s))
		}
	}
	deck.cards = cards
}

func (d *Deck) Shuffle() {
	d.random.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

func (d *Deck) DealACard() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, ErrEmptyDeck
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, nil
}

func (d *Deck) IsTopCardAnEight() bool {
	return len(d.cards) > 0 && d.cards[len(d.cards)-1].IsEight()
}

// Replace swaps in a new sequence of cards and shuffles it.
func (d *Deck) Replace(cards []card.Card) {
	d.cards = cards
	d.Shuffle()
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}
