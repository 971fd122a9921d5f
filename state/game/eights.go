package game

import (
	"errors"
	"strings"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/database"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/eights/msg"
	"github.com/ratel-online/eights/eights/player"
)

// Session is the side of a connection the game loop talks to.
type Session interface {
	WriteString(data string) error
	AskForString(timeout ...time.Duration) (string, error)
}

type Eights struct {
	timeout time.Duration
}

func NewEights(timeout time.Duration) *Eights {
	return &Eights{timeout: timeout}
}

func (g *Eights) Next(p *database.Player) (consts.StateID, error) {
	eights := p.Game()
	if eights == nil {
		return consts.StateHome, nil
	}
	err := Play(p, eights.Engine, g.timeout)
	if err != nil {
		return 0, err
	}
	p.EndGame()
	return consts.StateHome, nil
}

func (g *Eights) Exit(p *database.Player) consts.StateID {
	p.EndGame()
	return consts.StateHome
}

// Play runs the human side of one game until somebody wins. Errors from the
// session end it early.
func Play(s Session, engine *game.Engine, timeout time.Duration) error {
	engine.Start()
	for !engine.Over() {
		var err error
		switch engine.Phase() {
		case game.AwaitingSuitSelection:
			err = selectSuit(s, engine, timeout)
		case game.AwaitingHumanAction:
			err = takeTurn(s, engine, timeout)
		}
		if err != nil {
			return err
		}
	}
	return s.WriteString(msg.Message.GameOver(engine.State()))
}

func takeTurn(s Session, engine *game.Engine, timeout time.Duration) error {
	if err := s.WriteString(msg.Message.TurnStarted(engine.State())); err != nil {
		return err
	}
	input, err := s.AskForString(timeout)
	if err != nil {
		if errors.Is(err, consts.ErrorsTimeout) {
			_ = s.WriteString(msg.Sprintln("Timeout! You draw a card."))
			return engine.DrawCard()
		}
		return err
	}
	command := strings.ToLower(input)
	switch {
	case command == "d" || command == "draw":
		return engine.DrawCard()
	case command == "ls" || command == "v":
		return s.WriteString(msg.Message.Table(engine.State()))
	case strings.HasPrefix(command, "level "):
		return changeDifficulty(s, engine, strings.TrimPrefix(command, "level "))
	default:
		if err := engine.PlayCard(input); err != nil {
			log.Infof("rejected %q: %v\n", input, err)
		}
		return nil
	}
}

func selectSuit(s Session, engine *game.Engine, timeout time.Duration) error {
	for {
		if err := s.WriteString(msg.Message.SuitPrompt()); err != nil {
			return err
		}
		input, err := s.AskForString(timeout)
		if err != nil {
			if errors.Is(err, consts.ErrorsTimeout) {
				return engine.ContinueGameAfterSuitSelection(player.MostFrequentSuit(engine.Human().Cards()))
			}
			return err
		}
		chosen, err := suit.ByName(input)
		if err != nil {
			_ = s.WriteString(msg.Message.UnknownSuit(input))
			continue
		}
		return engine.ContinueGameAfterSuitSelection(chosen)
	}
}

func changeDifficulty(s Session, engine *game.Engine, name string) error {
	difficulty, err := game.ParseDifficulty(name)
	if err != nil {
		return s.WriteString(msg.Sprintln(err))
	}
	strategy, err := player.NewStrategy(difficulty)
	if err != nil {
		return s.WriteString(msg.Sprintln(err))
	}
	engine.SetStrategy(strategy)
	return s.WriteString(msg.Message.DifficultyChanged(difficulty))
}
