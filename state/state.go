package state

import (
	"errors"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/eights/config"
	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/database"
	"github.com/ratel-online/eights/state/game"
)

type State interface {
	Next(player *database.Player) (consts.StateID, error)
	Exit(player *database.Player) consts.StateID
}

func states(cfg config.Config) map[consts.StateID]State {
	return map[consts.StateID]State{
		consts.StateWelcome: &welcome{},
		consts.StateHome:    &home{cfg: cfg},
		consts.StateGame:    game.NewEights(cfg.PlayTimeout),
	}
}

// Run drives one session until it exits or its connection closes.
func Run(player *database.Player, cfg config.Config) {
	defer func() {
		if err := recover(); err != nil {
			async.PrintStackTrace(err)
		}
		log.Infof("player %s state machine break up.\n", player)
		_ = player.Close()
	}()
	registry := states(cfg)
	player.State(consts.StateWelcome)
	for {
		state := registry[player.GetState()]
		stateId, err := state.Next(player)
		if err != nil {
			var e consts.Error
			if !errors.As(err, &e) {
				log.Error(err)
				return
			}
			if e == consts.ErrorsChanClosed {
				return
			}
			if e.Exit {
				stateId = state.Exit(player)
				if stateId == 0 {
					return
				}
			}
		}
		if stateId > 0 {
			player.State(stateId)
		}
	}
}
