package database

import (
	"fmt"
	stringx "strings"
	"sync/atomic"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/eights/game"
)

type Player struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Score int64  `json:"score"`

	conn   *network.Conn
	data   chan *protocol.Packet
	read   atomic.Bool
	state  consts.StateID
	online atomic.Bool
	game   *Eights
}

// Offline runs once the connection stops reading; it wakes any pending ask.
func (p *Player) Offline() {
	if !p.online.CompareAndSwap(true, false) {
		return
	}
	_ = p.conn.Close()
	close(p.data)
	disconnected(p)
	log.Infof("player %s offline\n", p)
}

func (p *Player) Close() error {
	return p.conn.Close()
}

func (p *Player) Listening() error {
	for {
		pack, err := p.conn.Read()
		if err != nil {
			log.Error(err)
			return err
		}
		if p.read.Load() {
			p.data <- pack
		}
	}
}

func (p *Player) WriteString(data string) error {
	time.Sleep(30 * time.Millisecond)
	return p.conn.Write(protocol.Packet{
		Body: []byte(data),
	})
}

func (p *Player) WriteError(err error) error {
	if err == consts.ErrorsExist {
		return err
	}
	_ = p.conn.Write(protocol.Packet{
		Body: []byte(err.Error() + "\n"),
	})
	return err
}

func (p *Player) AskForPacket(timeout ...time.Duration) (*protocol.Packet, error) {
	p.StartTransaction()
	defer p.StopTransaction()
	return p.askForPacket(timeout...)
}

func (p *Player) askForPacket(timeout ...time.Duration) (*protocol.Packet, error) {
	var packet *protocol.Packet
	if len(timeout) > 0 && timeout[0] > 0 {
		select {
		case packet = <-p.data:
		case <-time.After(timeout[0]):
			return nil, consts.ErrorsTimeout
		}
	} else {
		packet = <-p.data
	}
	if packet == nil {
		return nil, consts.ErrorsChanClosed
	}
	single := stringx.ToLower(stringx.TrimSpace(packet.String()))
	if single == "exit" {
		return nil, consts.ErrorsExist
	}
	return packet, nil
}

func (p *Player) AskForString(timeout ...time.Duration) (string, error) {
	packet, err := p.AskForPacket(timeout...)
	if err != nil {
		return "", err
	}
	return stringx.TrimSpace(packet.String()), nil
}

func (p *Player) StartTransaction() {
	p.read.Store(true)
	_ = p.WriteString(consts.IsStart)
}

func (p *Player) StopTransaction() {
	p.read.Store(false)
	_ = p.WriteString(consts.IsStop)
}

func (p *Player) State(s consts.StateID) {
	p.state = s
}

func (p *Player) GetState() consts.StateID {
	return p.state
}

func (p *Player) Conn(conn *network.Conn) {
	p.conn = conn
	p.data = make(chan *protocol.Packet, 8)
	p.online.Store(true)
}

// StartGame deals a new private game against the computer.
func (p *Player) StartGame(difficulty game.Difficulty, seed int64) (*Eights, error) {
	eights, err := NewEights(p, p.String(), difficulty, seed)
	if err != nil {
		return nil, err
	}
	p.game = eights
	log.Infof("player %s started a %s game\n", p, difficulty)
	return eights, nil
}

func (p *Player) Game() *Eights {
	return p.game
}

func (p *Player) EndGame() {
	if p.game != nil {
		log.Infof("player %s left the game, %s\n", p, p.game.Engine.Phase())
	}
	p.game = nil
}

func (p *Player) String() string {
	return fmt.Sprintf("%s[%d]", p.Name, p.ID)
}
