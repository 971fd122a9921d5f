package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrUnknownCard  = fmt.Errorf("%w: card is not in hand", ErrInvalidMove)
	ErrEmptyDeck    = errors.New("deck is empty")
	ErrInvalidSuit  = errors.New("invalid suit")
	ErrNoEightOnTop = errors.New("top card is not an eight")
	ErrWrongPhase   = errors.New("action not allowed now")
	ErrGameOver     = errors.New("game is over")
)
