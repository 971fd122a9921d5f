package player

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/game"
)

// carelessPlayer skips its search once in every skipOdds turns and draws,
// whether or not it holds a playable card.
type carelessPlayer struct {
	basicPlayer
	skipOdds int
}

func NewVeryEasyPlayer() game.Strategy {
	return carelessPlayer{basicPlayer: basicPlayer{difficulty: game.VeryEasy}, skipOdds: 2}
}

func NewEasyPlayer() game.Strategy {
	return carelessPlayer{basicPlayer: basicPlayer{difficulty: game.Easy}, skipOdds: 3}
}

func (p carelessPlayer) ChooseMove(hand []card.Card, pile *game.Pile, random game.Random) game.Move {
	if random.Intn(p.skipOdds) == 0 {
		return game.DrawMove()
	}
	return p.firstPlayable(hand, pile)
}
