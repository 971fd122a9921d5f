package state

import (
	"strconv"

	"github.com/ratel-online/eights/config"
	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/database"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/eights/msg"
	"github.com/ratel-online/eights/eights/player"
)

type home struct {
	cfg config.Config
}

func (h *home) Next(p *database.Player) (consts.StateID, error) {
	difficulties := player.Playable()
	err := p.WriteString(msg.Message.DifficultyMenu(difficulties))
	if err != nil {
		return 0, p.WriteError(err)
	}
	input, err := p.AskForString()
	if err != nil {
		return 0, p.WriteError(err)
	}
	difficulty, err := selectDifficulty(input, difficulties, h.cfg.Difficulty)
	if err != nil {
		return 0, p.WriteError(err)
	}
	if _, err = p.StartGame(difficulty, h.cfg.Seed); err != nil {
		return 0, p.WriteError(err)
	}
	return consts.StateGame, nil
}

func (*home) Exit(player *database.Player) consts.StateID {
	return 0
}

// selectDifficulty accepts a menu number or a difficulty name; an empty
// answer keeps the configured default.
func selectDifficulty(input string, difficulties []game.Difficulty, fallback game.Difficulty) (game.Difficulty, error) {
	if input == "" {
		return fallback, nil
	}
	if selected, err := strconv.Atoi(input); err == nil {
		if selected < 1 || selected > len(difficulties) {
			return 0, consts.ErrorsDifficultyInvalid
		}
		return difficulties[selected-1], nil
	}
	difficulty, err := game.ParseDifficulty(input)
	if err != nil {
		return 0, consts.ErrorsInputInvalid
	}
	for _, playable := range difficulties {
		if playable == difficulty {
			return difficulty, nil
		}
	}
	return 0, consts.ErrorsDifficultyInvalid
}
