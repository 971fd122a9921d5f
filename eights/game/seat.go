package game

type Seat int

const (
	Human Seat = iota + 1
	Computer
)

func (s Seat) String() string {
	switch s {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return "nobody"
	}
}
