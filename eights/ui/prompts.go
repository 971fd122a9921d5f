package ui

import (
	"io"
	"strings"

	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/eights/msg"
	"github.com/ratel-online/eights/eights/player"
)

// PromptString returns the next non-empty line, or io.EOF once the input ends.
func (c *Console) PromptString(message string) (string, error) {
	for {
		c.println(message)
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		input := strings.TrimSpace(c.in.Text())
		if input == "" {
			c.println("Invalid text input")
			continue
		}
		return input, nil
	}
}

func (c *Console) PromptSuit() (suit.Suit, error) {
	for {
		input, err := c.PromptString(msg.Message.SuitPrompt())
		if err != nil {
			return 0, err
		}
		chosen, err := suit.ByName(input)
		if err != nil {
			c.println(msg.Message.UnknownSuit(input))
			continue
		}
		return chosen, nil
	}
}

func (c *Console) PromptDifficulty() (game.Difficulty, error) {
	difficulties := player.Playable()
	for {
		input, err := c.PromptString(msg.Message.DifficultyMenu(difficulties))
		if err != nil {
			return 0, err
		}
		for i, difficulty := range difficulties {
			if input == string(rune('1'+i)) {
				return difficulty, nil
			}
		}
		if difficulty, err := game.ParseDifficulty(input); err == nil && difficulty != game.Hard {
			return difficulty, nil
		}
		fprintfln(c.out, c.delay, "No difficulty assigned to '%s'", input)
	}
}
