package game

import "github.com/ratel-online/eights/eights/card"

// Move is a computer decision. Index refers to the hand snapshot the strategy was given.
type Move struct {
	Draw  bool
	Index int
	Card  card.Card
}

func DrawMove() Move {
	return Move{Draw: true, Index: -1}
}

func PlayMove(index int, c card.Card) Move {
	return Move{Index: index, Card: c}
}

type Strategy interface {
	Difficulty() Difficulty
	ChooseMove(hand []card.Card, pile *Pile, random Random) Move
}

// FirstPlayable scans the hand in storage order and stops at the first legal card.
func FirstPlayable(hand []card.Card, pile *Pile) (int, bool) {
	for index, candidateCard := range hand {
		if pile.IsValidToPlay(candidateCard) {
			return index, true
		}
	}
	return -1, false
}
