package player

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/game"
)

// mediumPlayer always plays the first legal card in hand order and only draws
// when it has none.
type mediumPlayer struct {
	basicPlayer
}

func NewMediumPlayer() game.Strategy {
	return mediumPlayer{basicPlayer: basicPlayer{difficulty: game.Medium}}
}

func (p mediumPlayer) ChooseMove(hand []card.Card, pile *game.Pile, random game.Random) game.Move {
	return p.firstPlayable(hand, pile)
}
