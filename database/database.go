package database

import (
	"sort"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
)

var players = hashmap.New()

// Connected registers the session of an authenticated connection. A second
// login with the same id replaces the first.
func Connected(conn *network.Conn, info *model.AuthInfo) *Player {
	player := &Player{
		ID:    info.ID,
		Name:  info.Name,
		Score: info.Score,
	}
	player.Conn(conn)
	players.Set(player.ID, player)
	return player
}

func GetPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

func GetPlayers() []*Player {
	list := make([]*Player, 0)
	players.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Player))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

func disconnected(player *Player) {
	if current := GetPlayer(player.ID); current == player {
		players.Del(player.ID)
	}
}
