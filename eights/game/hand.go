package game

import (
	"strings"

	"github.com/ratel-online/eights/eights/card"
)

// Hand keeps cards in the order they were received.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) Add(c card.Card) {
	h.cards = append(h.cards, c)
}

func (h *Hand) Remove(index int) (card.Card, bool) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, false
	}
	removed := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed, true
}

func (h *Hand) RemoveCard(c card.Card) bool {
	_, removed := h.Remove(h.IndexOf(c))
	return removed
}

// Find looks a card up by its identifier, ignoring case.
func (h *Hand) Find(id string) (card.Card, bool) {
	id = strings.TrimSpace(id)
	for _, cardInHand := range h.cards {
		if strings.EqualFold(cardInHand.ID(), id) {
			return cardInHand, true
		}
	}
	parsed, err := card.Parse(id)
	if err != nil {
		return card.Card{}, false
	}
	if index := h.IndexOf(parsed); index >= 0 {
		return h.cards[index], true
	}
	return card.Card{}, false
}

func (h *Hand) IndexOf(c card.Card) int {
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(c) {
			return index
		}
	}
	return -1
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) PlayableCards(pile *Pile) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if pile.IsValidToPlay(candidateCard) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}
