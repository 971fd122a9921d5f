package player

import (
	"errors"
	"fmt"

	"github.com/ratel-online/eights/eights/game"
)

var ErrUnsupportedDifficulty = errors.New("unsupported difficulty")

func NewStrategy(difficulty game.Difficulty) (game.Strategy, error) {
	switch difficulty {
	case game.VeryEasy:
		return NewVeryEasyPlayer(), nil
	case game.Easy:
		return NewEasyPlayer(), nil
	case game.Medium:
		return NewMediumPlayer(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDifficulty, difficulty)
	}
}

// Playable lists the difficulties a strategy exists for.
func Playable() []game.Difficulty {
	return []game.Difficulty{game.VeryEasy, game.Easy, game.Medium}
}
