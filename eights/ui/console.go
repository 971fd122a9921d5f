package ui

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/eights/msg"
	"github.com/ratel-online/eights/eights/player"
)

// Console plays the human seat on a terminal.
type Console struct {
	in    *bufio.Scanner
	out   io.Writer
	delay time.Duration
}

func NewConsole(in io.Reader, out io.Writer, delay time.Duration) *Console {
	return &Console{in: bufio.NewScanner(in), out: out, delay: delay}
}

func (c *Console) println(text string) {
	fprintln(c.out, c.delay, text)
}

func (c *Console) HandUpdated(seat game.Seat, cards []card.Card) {
	c.println(msg.Message.HandUpdated(seat, cards))
}

func (c *Console) PileTopChanged(top card.Card) {
	c.println(msg.Message.PileTopChanged(top))
}

func (c *Console) SuitAnnounced(seat game.Seat, announced suit.Suit) {
	c.println(msg.Message.SuitAnnounced(seat, announced))
}

func (c *Console) PromptSuitSelection() {}

func (c *Console) DeckReshuffled(top card.Card, deckSize int) {
	c.println(msg.Message.DeckReshuffled(top, deckSize))
}

func (c *Console) WinnerAnnounced(winner game.Seat) {
	c.println(msg.Message.WinnerFound(winner))
}

func (c *Console) InvalidMoveRejected(reason error) {
	c.println(msg.Message.InvalidMove(reason))
}

// Play reads commands until the game is over, the input ends or the human exits.
func (c *Console) Play(engine *game.Engine) error {
	c.println(msg.Message.Welcome())
	engine.Start()
	for !engine.Over() {
		switch engine.Phase() {
		case game.AwaitingSuitSelection:
			chosen, err := c.PromptSuit()
			if err != nil {
				return err
			}
			_ = engine.ContinueGameAfterSuitSelection(chosen)
		case game.AwaitingHumanAction:
			input, err := c.PromptString(msg.Message.TurnStarted(engine.State()))
			if err != nil {
				return err
			}
			if quit := c.handle(engine, input); quit {
				return nil
			}
		}
	}
	c.println(msg.Message.GameOver(engine.State()))
	return nil
}

func (c *Console) handle(engine *game.Engine, input string) bool {
	command := strings.ToLower(input)
	switch {
	case command == "exit":
		return true
	case command == "d" || command == "draw":
		_ = engine.DrawCard()
	case command == "ls" || command == "v":
		c.println(msg.Message.Table(engine.State()))
	case strings.HasPrefix(command, "level "):
		c.changeDifficulty(engine, strings.TrimPrefix(command, "level "))
	default:
		// rejections are reported through InvalidMoveRejected
		_ = engine.PlayCard(input)
	}
	return false
}

func (c *Console) changeDifficulty(engine *game.Engine, name string) {
	difficulty, err := game.ParseDifficulty(name)
	if err != nil {
		c.println(msg.Sprintln(err))
		return
	}
	strategy, err := player.NewStrategy(difficulty)
	if err != nil {
		c.println(msg.Sprintln(err))
		return
	}
	engine.SetStrategy(strategy)
	c.println(msg.Message.DifficultyChanged(difficulty))
}
