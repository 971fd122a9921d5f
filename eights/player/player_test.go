package player_test

import (
	"testing"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/eights/player"
	"github.com/stretchr/testify/require"
)

// scriptedRandom replays fixed rolls and never reorders anything.
type scriptedRandom struct {
	rolls []int
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.rolls) == 0 {
		return n - 1
	}
	roll := r.rolls[0]
	r.rolls = r.rolls[1:]
	return roll % n
}

func (r *scriptedRandom) Shuffle(n int, swap func(i, j int)) {}

func pileWith(top card.Card) *game.Pile {
	pile := game.NewPile()
	pile.AcceptACard(top)
	return pile
}

var mixedHand = []card.Card{
	card.New(card.Two, suit.Clubs),
	card.New(card.King, suit.Spades),
	card.New(card.Seven, suit.Hearts),
	card.New(card.Eight, suit.Clubs),
	card.New(card.Four, suit.Diamonds),
}

func TestMediumPlaysFirstPlayableCard(t *testing.T) {
	strategy := player.NewMediumPlayer()

	move := strategy.ChooseMove(mixedHand, pileWith(card.New(card.Seven, suit.Diamonds)), &scriptedRandom{})
	require.Equal(t, game.PlayMove(2, card.New(card.Seven, suit.Hearts)), move)

	move = strategy.ChooseMove(mixedHand, pileWith(card.New(card.Queen, suit.Spades)), &scriptedRandom{})
	require.Equal(t, game.PlayMove(1, card.New(card.King, suit.Spades)), move)
}

func TestMediumFallsBackToEight(t *testing.T) {
	hand := []card.Card{
		card.New(card.Two, suit.Clubs),
		card.New(card.Eight, suit.Spades),
	}
	move := player.NewMediumPlayer().ChooseMove(hand, pileWith(card.New(card.Nine, suit.Hearts)), &scriptedRandom{})
	require.Equal(t, game.PlayMove(1, card.New(card.Eight, suit.Spades)), move)
}

func TestMediumDrawsWithoutPlayableCard(t *testing.T) {
	hand := []card.Card{
		card.New(card.Two, suit.Clubs),
		card.New(card.King, suit.Spades),
	}
	move := player.NewMediumPlayer().ChooseMove(hand, pileWith(card.New(card.Nine, suit.Hearts)), &scriptedRandom{})
	require.True(t, move.Draw)
}

func TestMediumRespectsAnnouncedSuit(t *testing.T) {
	pile := pileWith(card.New(card.Eight, suit.Spades))
	require.NoError(t, pile.SetAnnouncedSuit(suit.Diamonds))

	move := player.NewMediumPlayer().ChooseMove(mixedHand, pile, &scriptedRandom{})
	require.Equal(t, game.PlayMove(3, card.New(card.Eight, suit.Clubs)), move)
}

func TestCarelessPlayers(t *testing.T) {
	top := pileWith(card.New(card.Seven, suit.Diamonds))
	playable := game.PlayMove(2, card.New(card.Seven, suit.Hearts))

	scenarios := []struct {
		description string
		strategy    game.Strategy
		roll        int
		expected    game.Move
	}{
		{
			description: "very_easy_skips_on_zero",
			strategy:    player.NewVeryEasyPlayer(),
			roll:        0,
			expected:    game.DrawMove(),
		},
		{
			description: "very_easy_searches_otherwise",
			strategy:    player.NewVeryEasyPlayer(),
			roll:        1,
			expected:    playable,
		},
		{
			description: "easy_skips_on_zero",
			strategy:    player.NewEasyPlayer(),
			roll:        0,
			expected:    game.DrawMove(),
		},
		{
			description: "easy_searches_on_one",
			strategy:    player.NewEasyPlayer(),
			roll:        1,
			expected:    playable,
		},
		{
			description: "easy_searches_on_two",
			strategy:    player.NewEasyPlayer(),
			roll:        2,
			expected:    playable,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			move := scenario.strategy.ChooseMove(mixedHand, top, &scriptedRandom{rolls: []int{scenario.roll}})
			require.Equal(t, scenario.expected, move)
		})
	}
}

type countingRandom struct {
	calls []int
}

func (r *countingRandom) Intn(n int) int {
	r.calls = append(r.calls, n)
	return n - 1
}

func (r *countingRandom) Shuffle(n int, swap func(i, j int)) {}

func TestSkipOdds(t *testing.T) {
	top := pileWith(card.New(card.Seven, suit.Diamonds))

	veryEasyRandom := &countingRandom{}
	player.NewVeryEasyPlayer().ChooseMove(mixedHand, top, veryEasyRandom)
	require.Equal(t, []int{2}, veryEasyRandom.calls)

	easyRandom := &countingRandom{}
	player.NewEasyPlayer().ChooseMove(mixedHand, top, easyRandom)
	require.Equal(t, []int{3}, easyRandom.calls)

	mediumRandom := &countingRandom{}
	player.NewMediumPlayer().ChooseMove(mixedHand, top, mediumRandom)
	require.Empty(t, mediumRandom.calls)
}

func TestNewStrategy(t *testing.T) {
	for _, difficulty := range player.Playable() {
		strategy, err := player.NewStrategy(difficulty)
		require.NoError(t, err)
		require.Equal(t, difficulty, strategy.Difficulty())
	}

	_, err := player.NewStrategy(game.Hard)
	require.ErrorIs(t, err, player.ErrUnsupportedDifficulty)
}

func TestMostFrequentSuit(t *testing.T) {
	require.Equal(t, suit.Clubs, player.MostFrequentSuit(nil))
	require.Equal(t, suit.Hearts, player.MostFrequentSuit([]card.Card{
		card.New(card.Two, suit.Hearts),
		card.New(card.Eight, suit.Spades),
		card.New(card.Eight, suit.Spades),
		card.New(card.Nine, suit.Hearts),
		card.New(card.Nine, suit.Diamonds),
	}))
	require.Equal(t, suit.Diamonds, player.MostFrequentSuit([]card.Card{
		card.New(card.Four, suit.Spades),
		card.New(card.Five, suit.Diamonds),
	}))
}
