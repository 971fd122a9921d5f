package game_test

// scriptedRandom replays fixed rolls; its Shuffle only counts calls unless a
// swap plan is given for that call.
type scriptedRandom struct {
	rolls    []int
	swaps    map[int][2]int
	shuffles int
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.rolls) == 0 {
		return n - 1
	}
	roll := r.rolls[0]
	r.rolls = r.rolls[1:]
	return roll % n
}

func (r *scriptedRandom) Shuffle(n int, swap func(i, j int)) {
	r.shuffles++
	if pair, ok := r.swaps[r.shuffles]; ok {
		swap(pair[0], pair[1])
	}
}
