package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
)

var Message = MessageWriter{}

func Sprintln(args ...interface{}) string {
	return fmt.Sprintln(args...)
}

func Sprintfln(format string, args ...interface{}) string {
	return fmt.Sprintln(fmt.Sprintf(format, args...))
}

// Sprintlns joins lines into one newline-terminated block.
func Sprintlns(lines []string) string {
	return fmt.Sprintln(strings.Join(lines, "\n"))
}

// MessageWriter renders engine notifications as text for the human seat.
type MessageWriter struct{}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO CRAZY %s%s%s%s EIGHTS",
		suit.Clubs.Paint(suit.Clubs.Symbol()),
		suit.Diamonds.Paint(suit.Diamonds.Symbol()),
		suit.Hearts.Paint(suit.Hearts.Symbol()),
		suit.Spades.Paint(suit.Spades.Symbol()),
	)
}

func (m MessageWriter) HandUpdated(seat game.Seat, cards []card.Card) string {
	if seat == game.Human {
		return Sprintfln("Your hand: %s", cards)
	}
	return Sprintfln("Computer holds %d card(s)", len(cards))
}

func (m MessageWriter) PileTopChanged(top card.Card) string {
	return Sprintfln("Top of the pile is %s", top)
}

func (m MessageWriter) SuitAnnounced(seat game.Seat, announced suit.Suit) string {
	if seat == game.Human {
		return Sprintfln("You announced %s!", announced)
	}
	return Sprintfln("Computer played an eight and announced %s!", announced)
}

func (m MessageWriter) SuitPrompt() string {
	options := make([]string, 0, len(suit.All))
	for _, s := range suit.All {
		options = append(options, fmt.Sprintf("%s (enter %s)", s, s.Letter()))
	}
	return Sprintfln("Select a suit: %s", strings.Join(options, ", "))
}

func (m MessageWriter) UnknownSuit(input string) string {
	return Sprintfln("Unknown suit '%s'", input)
}

func (m MessageWriter) DeckReshuffled(top card.Card, deckSize int) string {
	return Sprintfln("The pile was shuffled back into the deck: %d card(s), %s stays on top", deckSize, top)
}

func (m MessageWriter) WinnerFound(winner game.Seat) string {
	if winner == game.Human {
		return Sprintln("You win!")
	}
	return Sprintln("The computer wins!")
}

func (m MessageWriter) InvalidMove(reason error) string {
	return Sprintfln("Invalid move: %v", reason)
}

func (m MessageWriter) TurnStarted(state game.State) string {
	lines := []string{
		"It's your turn!",
		state.String(),
	}
	if len(state.PlayableCards) == 0 {
		lines = append(lines, "None of your cards can be played, enter d to draw")
	} else {
		ids := make([]string, 0, len(state.PlayableCards))
		for _, c := range state.PlayableCards {
			ids = append(ids, c.ID())
		}
		lines = append(lines, fmt.Sprintf("Playable: %s (enter a card, d to draw, ls to view)", strings.Join(ids, " ")))
	}
	return Sprintlns(lines)
}

func (m MessageWriter) Table(state game.State) string {
	return Sprintln(state.String())
}

func (m MessageWriter) DifficultyMenu(difficulties []game.Difficulty) string {
	lines := []string{"Select a difficulty:"}
	for i, difficulty := range difficulties {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, difficulty))
	}
	return Sprintlns(lines)
}

func (m MessageWriter) DifficultyChanged(difficulty game.Difficulty) string {
	return Sprintfln("The computer now plays %s", difficulty)
}

func (m MessageWriter) GameOver(state game.State) string {
	return Sprintfln("Game over (%s). Final table:\n%s", state.Phase, state)
}
