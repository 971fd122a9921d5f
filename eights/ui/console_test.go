package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/ratel-online/eights/eights/event"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/eights/player"
	"github.com/ratel-online/eights/eights/ui"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

// unshuffled leaves the deck in suit then rank order, so the human is dealt
// Q♠ down to 6♠ under K♠.
type unshuffled struct{}

func (unshuffled) Intn(n int) int                     { return 0 }
func (unshuffled) Shuffle(n int, swap func(i, j int)) {}

func newGame(input string) (*ui.Console, *game.Engine, *bytes.Buffer, *event.Recorder) {
	out := &bytes.Buffer{}
	console := ui.NewConsole(strings.NewReader(input), out, 0)
	recorder := event.NewRecorder()
	engine := game.New(event.NewEmitter(console, recorder), player.NewMediumPlayer(), game.WithRandom(unshuffled{}))
	return console, engine, out, recorder
}

func TestPlayEightThenChooseSuit(t *testing.T) {
	console, engine, out, recorder := newGame("zz\n8S\nx\nc\nexit\n")

	require.NoError(t, console.Play(engine))

	text := out.String()
	require.Contains(t, text, "WELCOME TO CRAZY")
	require.Contains(t, text, "Invalid move: invalid move: card is not in hand: zz")
	require.Contains(t, text, "Unknown suit 'x'")
	require.Contains(t, text, "You announced ♣ Clubs!")
	require.Len(t, recorder.Rejections(), 1)
	require.Equal(t, 8, engine.Computer().Size())
	require.Equal(t, game.AwaitingHumanAction, engine.Phase())
}

func TestPlayStopsAtEndOfInput(t *testing.T) {
	console, engine, _, _ := newGame("d\nls\n")

	require.Error(t, console.Play(engine))
	require.Equal(t, 8, engine.Human().Size())
	require.Equal(t, 6, engine.Computer().Size())
}

func TestLevelCommand(t *testing.T) {
	console, engine, out, _ := newGame("level easy\nlevel hard\nexit\n")

	require.NoError(t, console.Play(engine))
	require.Equal(t, game.Easy, engine.Difficulty())
	require.Contains(t, out.String(), "The computer now plays easy")
	require.Contains(t, out.String(), "unsupported difficulty: hard")
}

func TestPlayUntilSomebodyWins(t *testing.T) {
	var input strings.Builder
	for i := 0; i < 200; i++ {
		input.WriteString("d\n")
	}
	console, engine, out, recorder := newGame(input.String())

	require.NoError(t, console.Play(engine))
	require.True(t, engine.Over())
	require.Equal(t, []game.Seat{game.Computer}, recorder.Winners())
	require.Contains(t, out.String(), "The computer wins!")
	require.Contains(t, out.String(), "Game over")
}

func TestPromptDifficulty(t *testing.T) {
	console := ui.NewConsole(strings.NewReader("9\nhard\n2\n"), &bytes.Buffer{}, 0)
	difficulty, err := console.PromptDifficulty()
	require.NoError(t, err)
	require.Equal(t, game.Easy, difficulty)

	console = ui.NewConsole(strings.NewReader("very-easy\n"), &bytes.Buffer{}, 0)
	difficulty, err = console.PromptDifficulty()
	require.NoError(t, err)
	require.Equal(t, game.VeryEasy, difficulty)
}
