package state

import (
	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/database"
	"github.com/ratel-online/eights/eights/msg"
)

type welcome struct{}

func (*welcome) Next(player *database.Player) (consts.StateID, error) {
	err := player.WriteString(msg.Message.Welcome())
	if err != nil {
		return 0, player.WriteError(err)
	}
	return consts.StateHome, nil
}

func (*welcome) Exit(player *database.Player) consts.StateID {
	return 0
}
