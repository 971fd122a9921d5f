package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/eights/config"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/event"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/eights/player"
	"github.com/ratel-online/eights/eights/ui"
	"github.com/ratel-online/eights/network"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg, err := config.Load()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	if cfg.Mode == config.ModeConsole {
		if err := playConsole(cfg); err != nil {
			log.Error(err)
			os.Exit(1)
		}
		return
	}
	if cfg.WsAddr != "" {
		async.Async(func() {
			log.Error(network.NewWebsocketServer(cfg.WsAddr, cfg).Serve())
		})
	}
	log.Error(network.NewTcpServer(cfg.TcpAddr, cfg).Serve())
}

// consoleDelay paces console output so the computer's reply can be followed.
const consoleDelay = 300 * time.Millisecond

func playConsole(cfg config.Config) error {
	console := ui.NewConsole(os.Stdin, suit.Stdout, consoleDelay)
	difficulty, err := console.PromptDifficulty()
	if err != nil {
		return err
	}
	strategy, err := player.NewStrategy(difficulty)
	if err != nil {
		return err
	}
	engine := game.New(event.NewEmitter(console), strategy, game.WithRandom(game.NewRandom(cfg.Seed)))
	return console.Play(engine)
}
