package card

import (
	"fmt"
	"strings"

	"github.com/ratel-online/eights/eights/card/suit"
)

type Card struct {
	rank Rank
	suit suit.Suit
}

func New(rank Rank, s suit.Suit) Card {
	return Card{rank: rank, suit: s}
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) Suit() suit.Suit {
	return c.suit
}

func (c Card) IsEight() bool {
	return c.rank == Eight
}

func (c Card) Equal(other Card) bool {
	return c.rank == other.rank && c.suit == other.suit
}

// ID identifies the card in a hand, e.g. "8S" or "10H".
func (c Card) ID() string {
	return c.rank.String() + c.suit.Letter()
}

// ImagePath is where a graphical front end finds the card face.
func (c Card) ImagePath() string {
	return fmt.Sprintf("cards/%s_of_%s.png", strings.ToLower(c.rank.Name()), strings.ToLower(c.suit.Name()))
}

func (c Card) String() string {
	return c.suit.Paintf("[%s%s]", c.rank, c.suit.Symbol())
}

// Parse reads an identifier such as "7h", "10D" or "Q♠".
func Parse(id string) (Card, error) {
	id = strings.TrimSpace(id)
	if len(id) < 2 {
		return Card{}, fmt.Errorf("invalid card '%s'", id)
	}
	for _, s := range suit.All {
		for _, marker := range []string{s.Letter(), strings.ToLower(s.Letter()), s.Symbol()} {
			if !strings.HasSuffix(id, marker) {
				continue
			}
			rank, err := ParseRank(strings.TrimSuffix(id, marker))
			if err != nil {
				return Card{}, err
			}
			return New(rank, s), nil
		}
	}
	return Card{}, fmt.Errorf("invalid card '%s'", id)
}
