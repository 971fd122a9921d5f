package player

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
)

// MostFrequentSuit picks the suit the hand holds most of, ignoring eights.
// Ties go to the earlier suit in suit.All; an empty hand yields Clubs.
func MostFrequentSuit(hand []card.Card) suit.Suit {
	suitCounts := make(map[suit.Suit]int)
	for _, c := range hand {
		if !c.IsEight() {
			suitCounts[c.Suit()]++
		}
	}

	mostFrequentSuit := suit.Clubs
	mostFrequentSuitAmount := 0
	for _, s := range suit.All {
		if suitCounts[s] > mostFrequentSuitAmount {
			mostFrequentSuitAmount = suitCounts[s]
			mostFrequentSuit = s
		}
	}
	return mostFrequentSuit
}
