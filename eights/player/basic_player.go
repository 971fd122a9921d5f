package player

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/game"
)

type basicPlayer struct {
	difficulty game.Difficulty
}

func (p basicPlayer) Difficulty() game.Difficulty {
	return p.difficulty
}

func (p basicPlayer) firstPlayable(hand []card.Card, pile *game.Pile) game.Move {
	index, found := game.FirstPlayable(hand, pile)
	if !found {
		return game.DrawMove()
	}
	return game.PlayMove(index, hand[index])
}
