package game

import (
	"fmt"
	"strings"
)

type Difficulty int

const (
	VeryEasy Difficulty = iota + 1
	Easy
	Medium
	// Hard is reserved; no strategy plays it.
	Hard
)

var Difficulties = []Difficulty{VeryEasy, Easy, Medium, Hard}

var difficultyNames = map[Difficulty]string{
	VeryEasy: "very easy",
	Easy:     "easy",
	Medium:   "medium",
	Hard:     "hard",
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

func ParseDifficulty(text string) (Difficulty, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	text = strings.NewReplacer("-", " ", "_", " ").Replace(text)
	for difficulty, name := range difficultyNames {
		if text == name {
			return difficulty, nil
		}
	}
	return 0, fmt.Errorf("invalid difficulty '%s'", text)
}
