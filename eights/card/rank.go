package card

import (
	"fmt"
	"strconv"
	"strings"
)

type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var faces = map[Rank]string{
	Ace:   "A",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
}

var names = map[Rank]string{
	Ace:   "Ace",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
}

func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

func (r Rank) String() string {
	if face, ok := faces[r]; ok {
		return face
	}
	return strconv.Itoa(int(r))
}

func (r Rank) Name() string {
	if name, ok := names[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// ParseRank reads A, J, Q, K or a number from 2 to 10. Faces have no numeric form.
func ParseRank(text string) (Rank, error) {
	text = strings.ToUpper(strings.TrimSpace(text))
	for rank, face := range faces {
		if text == face {
			return rank, nil
		}
	}
	number, err := strconv.Atoi(text)
	if err != nil || number < int(Two) || number > int(Ten) {
		return 0, fmt.Errorf("invalid rank '%s'", text)
	}
	return Rank(number), nil
}
