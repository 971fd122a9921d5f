package game

import (
	"math/rand"
	"time"
)

// Random is the only source of non-determinism in a game. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
