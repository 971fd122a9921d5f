package game

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
)

// Playable reports whether candidateCard may follow topCard. announced is only
// consulted when topCard is an eight; an eight without an announcement stands
// for its own suit.
func Playable(candidateCard card.Card, topCard card.Card, announced suit.Suit) bool {
	if candidateCard.IsEight() {
		return true
	}
	if topCard.IsEight() {
		if !announced.Valid() {
			announced = topCard.Suit()
		}
		return candidateCard.Suit() == announced
	}
	return candidateCard.Suit() == topCard.Suit() || candidateCard.Rank() == topCard.Rank()
}
